package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"filmforge-backend/internal/domains/invitation/model"
	"filmforge-backend/internal/infrastructure/database"
)

type postgresInvitationRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresInvitationRepository(pool *pgxpool.Pool) InvitationRepository {
	return &postgresInvitationRepository{pool: pool}
}

const invitationColumns = `id, has_accepted, kind, movie_id, actor_id, created_at, updated_at`

func scanInvitation(row pgx.Row) (*model.Invitation, error) {
	inv := &model.Invitation{}
	err := row.Scan(&inv.ID, &inv.HasAccepted, &inv.Kind, &inv.MovieID, &inv.ActorID, &inv.CreatedAt, &inv.UpdatedAt)
	return inv, err
}

func (r *postgresInvitationRepository) Create(ctx context.Context, inv *model.Invitation) error {
	query := `
		INSERT INTO invitations (id, has_accepted, kind, movie_id, actor_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := database.Conn(ctx, r.pool).Exec(ctx, query,
		inv.ID, inv.HasAccepted, string(inv.Kind), inv.MovieID, inv.ActorID, inv.CreatedAt, inv.UpdatedAt)
	return database.MapError(err, "failed to create invitation", nil, model.ErrInvitationExists)
}

func (r *postgresInvitationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE id = $1`
	inv, err := scanInvitation(database.Conn(ctx, r.pool).QueryRow(ctx, query, id))
	if err != nil {
		return nil, database.MapError(err, "failed to get invitation", model.ErrInvitationNotFound, nil)
	}
	return inv, nil
}

func (r *postgresInvitationRepository) GetByActorAndMovie(ctx context.Context, actorID, movieID uuid.UUID) (*model.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE actor_id = $1 AND movie_id = $2`
	inv, err := scanInvitation(database.Conn(ctx, r.pool).QueryRow(ctx, query, actorID, movieID))
	if err != nil {
		return nil, database.MapError(err, "failed to get invitation", model.ErrInvitationNotFound, nil)
	}
	return inv, nil
}

func (r *postgresInvitationRepository) ListByActor(ctx context.Context, actorID uuid.UUID) ([]*model.Invitation, error) {
	return r.query(ctx, `SELECT `+invitationColumns+` FROM invitations WHERE actor_id = $1 ORDER BY created_at DESC, id`, actorID)
}

func (r *postgresInvitationRepository) ListByMovie(ctx context.Context, movieID uuid.UUID) ([]*model.Invitation, error) {
	return r.query(ctx, `SELECT `+invitationColumns+` FROM invitations WHERE movie_id = $1 ORDER BY created_at DESC, id`, movieID)
}

func (r *postgresInvitationRepository) List(ctx context.Context, offset, limit int) ([]*model.Invitation, int, error) {
	var total int
	if err := database.Conn(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM invitations`).Scan(&total); err != nil {
		return nil, 0, database.MapError(err, "failed to count invitations", nil, nil)
	}

	invs, err := r.query(ctx,
		`SELECT `+invitationColumns+` FROM invitations ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return invs, total, nil
}

func (r *postgresInvitationRepository) query(ctx context.Context, sql string, args ...interface{}) ([]*model.Invitation, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, database.MapError(err, "failed to list invitations", nil, nil)
	}
	defer rows.Close()

	invs := []*model.Invitation{}
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, database.MapError(err, "failed to scan invitation", nil, nil)
		}
		invs = append(invs, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, database.MapError(err, "failed to iterate invitations", nil, nil)
	}
	return invs, nil
}

func (r *postgresInvitationRepository) Update(ctx context.Context, inv *model.Invitation) error {
	query := `
		UPDATE invitations
		SET has_accepted = $2, kind = $3, movie_id = $4, actor_id = $5, updated_at = $6
		WHERE id = $1
	`
	tag, err := database.Conn(ctx, r.pool).Exec(ctx, query,
		inv.ID, inv.HasAccepted, string(inv.Kind), inv.MovieID, inv.ActorID, inv.UpdatedAt)
	if err != nil {
		return database.MapError(err, "failed to update invitation", nil, model.ErrInvitationExists)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrInvitationNotFound
	}
	return nil
}

func (r *postgresInvitationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM invitations WHERE id = $1`, id)
	if err != nil {
		return database.MapError(err, "failed to delete invitation", nil, nil)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrInvitationNotFound
	}
	return nil
}
