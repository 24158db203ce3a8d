package repository

import (
	"context"

	"github.com/google/uuid"

	"filmforge-backend/internal/domains/review/model"
)

type ReviewRepository interface {
	Create(ctx context.Context, r *model.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error)
	List(ctx context.Context, filter model.ListFilter, offset, limit int) ([]*model.Review, int, error)
	Update(ctx context.Context, r *model.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}
