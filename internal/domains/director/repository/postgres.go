package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"filmforge-backend/internal/domains/director/model"
	"filmforge-backend/internal/infrastructure/database"
	"filmforge-backend/pkg/cache"
)

const directorCachePrefix = "directors:id:"

type postgresDirectorRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
	ttl   time.Duration
	log   zerolog.Logger
}

func NewPostgresDirectorRepository(pool *pgxpool.Pool, c cache.Cache, ttl time.Duration, log zerolog.Logger) DirectorRepository {
	return &postgresDirectorRepository{pool: pool, cache: c, ttl: ttl, log: log}
}

const directorColumns = `id, name, bio, user_id, created_at, updated_at`

func scanDirector(row pgx.Row) (*model.Director, error) {
	d := &model.Director{}
	err := row.Scan(&d.ID, &d.Name, &d.Bio, &d.UserID, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

func (r *postgresDirectorRepository) Create(ctx context.Context, d *model.Director) error {
	query := `
		INSERT INTO directors (id, name, bio, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := database.Conn(ctx, r.pool).Exec(ctx, query, d.ID, d.Name, d.Bio, d.UserID, d.CreatedAt, d.UpdatedAt)
	return database.MapError(err, "failed to create director", nil, model.ErrUserLinked)
}

func (r *postgresDirectorRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Director, error) {
	key := directorCachePrefix + id.String()

	var cached model.Director
	if found, err := r.cache.Get(ctx, key, &cached); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("director cache read failed")
	} else if found {
		return &cached, nil
	}

	query := `SELECT ` + directorColumns + ` FROM directors WHERE id = $1`
	d, err := scanDirector(database.Conn(ctx, r.pool).QueryRow(ctx, query, id))
	if err != nil {
		return nil, database.MapError(err, "failed to get director", model.ErrDirectorNotFound, nil)
	}

	if err := r.cache.Set(ctx, key, d, r.ttl); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("director cache write failed")
	}
	return d, nil
}

func (r *postgresDirectorRepository) List(ctx context.Context, offset, limit int) ([]*model.Director, int, error) {
	q := database.Conn(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM directors`).Scan(&total); err != nil {
		return nil, 0, database.MapError(err, "failed to count directors", nil, nil)
	}

	rows, err := q.Query(ctx,
		`SELECT `+directorColumns+` FROM directors ORDER BY name, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, database.MapError(err, "failed to list directors", nil, nil)
	}
	defer rows.Close()

	directors := make([]*model.Director, 0, limit)
	for rows.Next() {
		d, err := scanDirector(rows)
		if err != nil {
			return nil, 0, database.MapError(err, "failed to scan director", nil, nil)
		}
		directors = append(directors, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, database.MapError(err, "failed to iterate directors", nil, nil)
	}
	return directors, total, nil
}

func (r *postgresDirectorRepository) Update(ctx context.Context, d *model.Director) error {
	query := `UPDATE directors SET name = $2, bio = $3, user_id = $4, updated_at = $5 WHERE id = $1`

	tag, err := database.Conn(ctx, r.pool).Exec(ctx, query, d.ID, d.Name, d.Bio, d.UserID, d.UpdatedAt)
	if err != nil {
		return database.MapError(err, "failed to update director", nil, model.ErrUserLinked)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrDirectorNotFound
	}
	r.evict(ctx, d.ID)
	return nil
}

func (r *postgresDirectorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM directors WHERE id = $1`, id)
	if err != nil {
		return database.MapError(err, "failed to delete director", nil, nil)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrDirectorNotFound
	}
	r.evict(ctx, id)
	return nil
}

func (r *postgresDirectorRepository) evict(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, directorCachePrefix+id.String()); err != nil {
		r.log.Warn().Err(err).Str("director_id", id.String()).Msg("director cache eviction failed")
	}
}
