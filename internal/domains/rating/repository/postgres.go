package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"filmforge-backend/internal/domains/rating/model"
	"filmforge-backend/internal/infrastructure/database"
)

type postgresRatingRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRatingRepository(pool *pgxpool.Pool) RatingRepository {
	return &postgresRatingRepository{pool: pool}
}

const ratingColumns = `id, value, movie_id, user_id, created_at, updated_at`

func scanRating(row pgx.Row) (*model.Rating, error) {
	r := &model.Rating{}
	var value int16
	if err := row.Scan(&r.ID, &value, &r.MovieID, &r.UserID, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	r.Value = int(value)
	return r, nil
}

func (repo *postgresRatingRepository) Create(ctx context.Context, r *model.Rating) error {
	query := `
		INSERT INTO ratings (id, value, movie_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := database.Conn(ctx, repo.pool).Exec(ctx, query,
		r.ID, int16(r.Value), r.MovieID, r.UserID, r.CreatedAt, r.UpdatedAt)
	return database.MapError(err, "failed to create rating", nil, model.ErrAlreadyRated)
}

func (repo *postgresRatingRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE id = $1`
	r, err := scanRating(database.Conn(ctx, repo.pool).QueryRow(ctx, query, id))
	if err != nil {
		return nil, database.MapError(err, "failed to get rating", model.ErrRatingNotFound, nil)
	}
	return r, nil
}

func (repo *postgresRatingRepository) List(ctx context.Context, filter model.ListFilter, offset, limit int) ([]*model.Rating, int, error) {
	q := database.Conn(ctx, repo.pool)

	// $1 is NULL when no movie filter is set
	movieID := filter.MovieID

	var total int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM ratings WHERE ($1::uuid IS NULL OR movie_id = $1)`, movieID).Scan(&total)
	if err != nil {
		return nil, 0, database.MapError(err, "failed to count ratings", nil, nil)
	}

	rows, err := q.Query(ctx, `
		SELECT `+ratingColumns+`
		FROM ratings
		WHERE ($1::uuid IS NULL OR movie_id = $1)
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`, movieID, limit, offset)
	if err != nil {
		return nil, 0, database.MapError(err, "failed to list ratings", nil, nil)
	}
	defer rows.Close()

	ratings := make([]*model.Rating, 0, limit)
	for rows.Next() {
		r, err := scanRating(rows)
		if err != nil {
			return nil, 0, database.MapError(err, "failed to scan rating", nil, nil)
		}
		ratings = append(ratings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, database.MapError(err, "failed to iterate ratings", nil, nil)
	}
	return ratings, total, nil
}

func (repo *postgresRatingRepository) Update(ctx context.Context, r *model.Rating) error {
	tag, err := database.Conn(ctx, repo.pool).Exec(ctx,
		`UPDATE ratings SET value = $2, updated_at = $3 WHERE id = $1`, r.ID, int16(r.Value), r.UpdatedAt)
	if err != nil {
		return database.MapError(err, "failed to update rating", nil, nil)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRatingNotFound
	}
	return nil
}

func (repo *postgresRatingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := database.Conn(ctx, repo.pool).Exec(ctx, `DELETE FROM ratings WHERE id = $1`, id)
	if err != nil {
		return database.MapError(err, "failed to delete rating", nil, nil)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRatingNotFound
	}
	return nil
}
