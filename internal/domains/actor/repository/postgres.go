package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"filmforge-backend/internal/domains/actor/model"
	"filmforge-backend/internal/infrastructure/database"
)

type postgresActorRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresActorRepository(pool *pgxpool.Pool) ActorRepository {
	return &postgresActorRepository{pool: pool}
}

const actorColumns = `id, name, bio, fee, user_id, created_at, updated_at`

func scanActor(row pgx.Row) (*model.Actor, error) {
	a := &model.Actor{}
	var fee int64
	if err := row.Scan(&a.ID, &a.Name, &a.Bio, &fee, &a.UserID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Fee = uint64(fee)
	return a, nil
}

func (r *postgresActorRepository) Create(ctx context.Context, a *model.Actor) error {
	query := `
		INSERT INTO actors (id, name, bio, fee, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := database.Conn(ctx, r.pool).Exec(ctx, query,
		a.ID, a.Name, a.Bio, int64(a.Fee), a.UserID, a.CreatedAt, a.UpdatedAt)
	return database.MapError(err, "failed to create actor", nil, model.ErrUserLinked)
}

func (r *postgresActorRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Actor, error) {
	query := `SELECT ` + actorColumns + ` FROM actors WHERE id = $1`
	a, err := scanActor(database.Conn(ctx, r.pool).QueryRow(ctx, query, id))
	if err != nil {
		return nil, database.MapError(err, "failed to get actor", model.ErrActorNotFound, nil)
	}
	return a, nil
}

func (r *postgresActorRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Actor, error) {
	if len(ids) == 0 {
		return []*model.Actor{}, nil
	}

	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}

	query := `SELECT ` + actorColumns + ` FROM actors WHERE id = ANY($1::uuid[])`
	rows, err := database.Conn(ctx, r.pool).Query(ctx, query, pq.Array(raw))
	if err != nil {
		return nil, database.MapError(err, "failed to get actors", nil, nil)
	}
	defer rows.Close()

	byID := make(map[uuid.UUID]*model.Actor, len(ids))
	for rows.Next() {
		a, err := scanActor(rows)
		if err != nil {
			return nil, database.MapError(err, "failed to scan actor", nil, nil)
		}
		byID[a.ID] = a
	}
	if err := rows.Err(); err != nil {
		return nil, database.MapError(err, "failed to iterate actors", nil, nil)
	}

	actors := make([]*model.Actor, 0, len(ids))
	for _, id := range ids {
		a, ok := byID[id]
		if !ok {
			return nil, model.ErrActorNotFound.WithDetails(map[string]string{"actor_id": id.String()})
		}
		actors = append(actors, a)
	}
	return actors, nil
}

func (r *postgresActorRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Actor, error) {
	query := `SELECT ` + actorColumns + ` FROM actors WHERE user_id = $1`
	a, err := scanActor(database.Conn(ctx, r.pool).QueryRow(ctx, query, userID))
	if err != nil {
		return nil, database.MapError(err, "failed to get actor by user", model.ErrActorNotFound, nil)
	}
	return a, nil
}

func (r *postgresActorRepository) List(ctx context.Context, offset, limit int) ([]*model.Actor, int, error) {
	q := database.Conn(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM actors`).Scan(&total); err != nil {
		return nil, 0, database.MapError(err, "failed to count actors", nil, nil)
	}

	rows, err := q.Query(ctx,
		`SELECT `+actorColumns+` FROM actors ORDER BY name, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, database.MapError(err, "failed to list actors", nil, nil)
	}
	defer rows.Close()

	actors := make([]*model.Actor, 0, limit)
	for rows.Next() {
		a, err := scanActor(rows)
		if err != nil {
			return nil, 0, database.MapError(err, "failed to scan actor", nil, nil)
		}
		actors = append(actors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, database.MapError(err, "failed to iterate actors", nil, nil)
	}
	return actors, total, nil
}

func (r *postgresActorRepository) Update(ctx context.Context, a *model.Actor) error {
	query := `UPDATE actors SET name = $2, bio = $3, fee = $4, user_id = $5, updated_at = $6 WHERE id = $1`

	tag, err := database.Conn(ctx, r.pool).Exec(ctx, query,
		a.ID, a.Name, a.Bio, int64(a.Fee), a.UserID, a.UpdatedAt)
	if err != nil {
		return database.MapError(err, "failed to update actor", nil, model.ErrUserLinked)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrActorNotFound
	}
	return nil
}

func (r *postgresActorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM actors WHERE id = $1`, id)
	if err != nil {
		return database.MapError(err, "failed to delete actor", nil, nil)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrActorNotFound
	}
	return nil
}
