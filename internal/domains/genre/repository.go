package genre

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, g *Genre) error
	GetByID(ctx context.Context, id uuid.UUID) (*Genre, error)
	List(ctx context.Context) ([]*Genre, error)
	Update(ctx context.Context, g *Genre) error
	Delete(ctx context.Context, id uuid.UUID) error
}
