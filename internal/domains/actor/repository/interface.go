package repository

import (
	"context"

	"github.com/google/uuid"

	"filmforge-backend/internal/domains/actor/model"
)

type ActorRepository interface {
	Create(ctx context.Context, a *model.Actor) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Actor, error)
	// GetByIDs returns the actors in ids order; a missing id is ErrActorNotFound.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Actor, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Actor, error)
	List(ctx context.Context, offset, limit int) ([]*model.Actor, int, error)
	Update(ctx context.Context, a *model.Actor) error
	Delete(ctx context.Context, id uuid.UUID) error
}
