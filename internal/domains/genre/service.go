package genre

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, req GenreRequest) (*GenreResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*GenreResponse, error)
	List(ctx context.Context) ([]*GenreResponse, error)
	Update(ctx context.Context, id uuid.UUID, req GenreRequest) (*GenreResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
