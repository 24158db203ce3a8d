package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"filmforge-backend/internal/domains/genre"
	"filmforge-backend/internal/infrastructure/database"
	"filmforge-backend/pkg/cache"
)

const (
	cacheKeyAll     = "genres:all"
	cacheKeyPrefix  = "genres:id:"
	cacheKeyPattern = "genres:*"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
	ttl   time.Duration
	log   zerolog.Logger
}

// NewPostgresRepository returns a genre repository with read-through
// caching. Cache failures are logged and fall back to the database.
func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache, ttl time.Duration, log zerolog.Logger) genre.Repository {
	return &postgresRepository{pool: pool, cache: c, ttl: ttl, log: log}
}

func scanGenre(row pgx.Row) (*genre.Genre, error) {
	g := &genre.Genre{}
	err := row.Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

func (r *postgresRepository) Create(ctx context.Context, g *genre.Genre) error {
	const query = `
		INSERT INTO genres (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := database.Conn(ctx, r.pool).Exec(ctx, query, g.ID, g.Name, g.CreatedAt, g.UpdatedAt)
	if err != nil {
		return database.MapError(err, "failed to create genre", nil, genre.ErrGenreAlreadyExists)
	}
	r.invalidate(ctx)
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	key := cacheKeyPrefix + id.String()

	var cached genre.Genre
	if found, err := r.cache.Get(ctx, key, &cached); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("genre cache read failed")
	} else if found {
		return &cached, nil
	}

	const query = `SELECT id, name, created_at, updated_at FROM genres WHERE id = $1`
	g, err := scanGenre(database.Conn(ctx, r.pool).QueryRow(ctx, query, id))
	if err != nil {
		return nil, database.MapError(err, "failed to get genre", genre.ErrGenreNotFound, nil)
	}

	if err := r.cache.Set(ctx, key, g, r.ttl); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("genre cache write failed")
	}
	return g, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]*genre.Genre, error) {
	var cached []*genre.Genre
	if found, err := r.cache.Get(ctx, cacheKeyAll, &cached); err != nil {
		r.log.Warn().Err(err).Msg("genre list cache read failed")
	} else if found {
		return cached, nil
	}

	rows, err := database.Conn(ctx, r.pool).Query(ctx,
		`SELECT id, name, created_at, updated_at FROM genres ORDER BY name`)
	if err != nil {
		return nil, database.MapError(err, "failed to list genres", nil, nil)
	}
	defer rows.Close()

	genres := make([]*genre.Genre, 0)
	for rows.Next() {
		g, err := scanGenre(rows)
		if err != nil {
			return nil, database.MapError(err, "failed to scan genre", nil, nil)
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, database.MapError(err, "failed to iterate genres", nil, nil)
	}

	if err := r.cache.Set(ctx, cacheKeyAll, genres, r.ttl); err != nil {
		r.log.Warn().Err(err).Msg("genre list cache write failed")
	}
	return genres, nil
}

func (r *postgresRepository) Update(ctx context.Context, g *genre.Genre) error {
	const query = `UPDATE genres SET name = $2, updated_at = $3 WHERE id = $1`

	tag, err := database.Conn(ctx, r.pool).Exec(ctx, query, g.ID, g.Name, g.UpdatedAt)
	if err != nil {
		return database.MapError(err, "failed to update genre", nil, genre.ErrGenreAlreadyExists)
	}
	if tag.RowsAffected() == 0 {
		return genre.ErrGenreNotFound
	}
	r.invalidate(ctx)
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		return database.MapError(err, "failed to delete genre", nil, nil)
	}
	if tag.RowsAffected() == 0 {
		return genre.ErrGenreNotFound
	}
	r.invalidate(ctx)
	return nil
}

func (r *postgresRepository) invalidate(ctx context.Context) {
	if err := r.cache.DeletePattern(ctx, cacheKeyPattern); err != nil {
		r.log.Warn().Err(err).Msg("genre cache invalidation failed")
	}
}
