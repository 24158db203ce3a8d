package repository

import (
	"context"

	"github.com/google/uuid"

	"filmforge-backend/internal/domains/director/model"
)

type DirectorRepository interface {
	Create(ctx context.Context, d *model.Director) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Director, error)
	List(ctx context.Context, offset, limit int) ([]*model.Director, int, error)
	Update(ctx context.Context, d *model.Director) error
	Delete(ctx context.Context, id uuid.UUID) error
}
