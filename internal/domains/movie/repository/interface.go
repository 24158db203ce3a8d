package repository

import (
	"context"

	"github.com/google/uuid"

	"filmforge-backend/internal/domains/movie/model"
)

// MovieRepository persists movies and their rosters. Every read returns
// movies with the roster loaded.
type MovieRepository interface {
	Create(ctx context.Context, m *model.Movie) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Movie, error)
	// GetByActorID returns the rostered movie of the actor with the latest
	// start date.
	GetByActorID(ctx context.Context, actorID uuid.UUID) (*model.Movie, error)
	List(ctx context.Context, filter model.ListFilter, offset, limit int) ([]*model.Movie, int, error)
	Update(ctx context.Context, m *model.Movie) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceRoster makes actorIDs the complete roster of the movie.
	ReplaceRoster(ctx context.Context, movieID uuid.UUID, actorIDs []uuid.UUID) error
	// AddActor puts the actor on the roster; already rostered actors are left as is.
	AddActor(ctx context.Context, movieID, actorID uuid.UUID) error
	RemoveActor(ctx context.Context, movieID, actorID uuid.UUID) error
}
