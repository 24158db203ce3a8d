package repository

import (
	"context"

	"github.com/google/uuid"

	"filmforge-backend/internal/domains/rating/model"
)

type RatingRepository interface {
	Create(ctx context.Context, r *model.Rating) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Rating, error)
	List(ctx context.Context, filter model.ListFilter, offset, limit int) ([]*model.Rating, int, error)
	Update(ctx context.Context, r *model.Rating) error
	Delete(ctx context.Context, id uuid.UUID) error
}
