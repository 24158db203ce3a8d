package repository

import (
	"context"

	"github.com/google/uuid"

	"filmforge-backend/internal/domains/invitation/model"
)

type InvitationRepository interface {
	Create(ctx context.Context, inv *model.Invitation) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Invitation, error)
	GetByActorAndMovie(ctx context.Context, actorID, movieID uuid.UUID) (*model.Invitation, error)
	ListByActor(ctx context.Context, actorID uuid.UUID) ([]*model.Invitation, error)
	ListByMovie(ctx context.Context, movieID uuid.UUID) ([]*model.Invitation, error)
	List(ctx context.Context, offset, limit int) ([]*model.Invitation, int, error)
	Update(ctx context.Context, inv *model.Invitation) error
	Delete(ctx context.Context, id uuid.UUID) error
}
