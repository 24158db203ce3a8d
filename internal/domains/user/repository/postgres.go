package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"filmforge-backend/internal/domains/user"
	"filmforge-backend/internal/infrastructure/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

const userColumns = `id, name, email, password_hash, role, created_at, updated_at`

func scanUser(row pgx.Row) (*user.User, error) {
	u := &user.User{}
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

func (r *postgresRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := database.Conn(ctx, r.pool).Exec(ctx, query,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.CreatedAt, u.UpdatedAt,
	)
	return database.MapError(err, "failed to create user", nil, user.ErrEmailAlreadyExists)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(database.Conn(ctx, r.pool).QueryRow(ctx, query, id))
	if err != nil {
		return nil, database.MapError(err, "failed to get user", user.ErrUserNotFound, nil)
	}
	return u, nil
}

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(database.Conn(ctx, r.pool).QueryRow(ctx, query, email))
	if err != nil {
		return nil, database.MapError(err, "failed to get user by email", user.ErrUserNotFound, nil)
	}
	return u, nil
}

func (r *postgresRepository) List(ctx context.Context, offset, limit int) ([]*user.User, int, error) {
	q := database.Conn(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, database.MapError(err, "failed to count users", nil, nil)
	}

	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`
	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, database.MapError(err, "failed to list users", nil, nil)
	}
	defer rows.Close()

	users := make([]*user.User, 0, limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, database.MapError(err, "failed to scan user", nil, nil)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, database.MapError(err, "failed to iterate users", nil, nil)
	}

	return users, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users
		SET name = $2, email = $3, password_hash = $4, role = $5, updated_at = $6
		WHERE id = $1
	`
	tag, err := database.Conn(ctx, r.pool).Exec(ctx, query,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.UpdatedAt,
	)
	if err != nil {
		return database.MapError(err, "failed to update user", nil, user.ErrEmailAlreadyExists)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return database.MapError(err, "failed to delete user", nil, nil)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
