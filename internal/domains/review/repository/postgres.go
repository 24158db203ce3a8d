package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"filmforge-backend/internal/domains/review/model"
	"filmforge-backend/internal/infrastructure/database"
)

type postgresReviewRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &postgresReviewRepository{pool: pool}
}

const reviewColumns = `id, title, content, movie_id, user_id, created_at, updated_at`

func scanReview(row pgx.Row) (*model.Review, error) {
	r := &model.Review{}
	err := row.Scan(&r.ID, &r.Title, &r.Content, &r.MovieID, &r.UserID, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func (repo *postgresReviewRepository) Create(ctx context.Context, r *model.Review) error {
	query := `
		INSERT INTO reviews (id, title, content, movie_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := database.Conn(ctx, repo.pool).Exec(ctx, query,
		r.ID, r.Title, r.Content, r.MovieID, r.UserID, r.CreatedAt, r.UpdatedAt)
	return database.MapError(err, "failed to create review", nil, nil)
}

func (repo *postgresReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`
	r, err := scanReview(database.Conn(ctx, repo.pool).QueryRow(ctx, query, id))
	if err != nil {
		return nil, database.MapError(err, "failed to get review", model.ErrReviewNotFound, nil)
	}
	return r, nil
}

func (repo *postgresReviewRepository) List(ctx context.Context, filter model.ListFilter, offset, limit int) ([]*model.Review, int, error) {
	q := database.Conn(ctx, repo.pool)

	var (
		conditions []string
		args       []interface{}
	)
	if filter.MovieID != nil {
		args = append(args, *filter.MovieID)
		conditions = append(conditions, fmt.Sprintf("movie_id = $%d", len(args)))
	}
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}
	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM reviews`+where, args...).Scan(&total); err != nil {
		return nil, 0, database.MapError(err, "failed to count reviews", nil, nil)
	}

	query := fmt.Sprintf(`SELECT %s FROM reviews%s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`,
		reviewColumns, where, len(args)+1, len(args)+2)
	rows, err := q.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, database.MapError(err, "failed to list reviews", nil, nil)
	}
	defer rows.Close()

	reviews := make([]*model.Review, 0, limit)
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, 0, database.MapError(err, "failed to scan review", nil, nil)
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, database.MapError(err, "failed to iterate reviews", nil, nil)
	}
	return reviews, total, nil
}

func (repo *postgresReviewRepository) Update(ctx context.Context, r *model.Review) error {
	query := `UPDATE reviews SET title = $2, content = $3, updated_at = $4 WHERE id = $1`

	tag, err := database.Conn(ctx, repo.pool).Exec(ctx, query, r.ID, r.Title, r.Content, r.UpdatedAt)
	if err != nil {
		return database.MapError(err, "failed to update review", nil, nil)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}
	return nil
}

func (repo *postgresReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := database.Conn(ctx, repo.pool).Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return database.MapError(err, "failed to delete review", nil, nil)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}
	return nil
}
