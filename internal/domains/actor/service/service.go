package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"filmforge-backend/internal/domains/actor/model"
	"filmforge-backend/internal/domains/actor/repository"
	"filmforge-backend/internal/domains/budget"
	moviemodel "filmforge-backend/internal/domains/movie/model"
	"filmforge-backend/internal/shared"
	"filmforge-backend/internal/shared/apperror"
	"filmforge-backend/internal/shared/utils"
	"filmforge-backend/pkg/lock"
)

type ServiceInterface interface {
	Create(ctx context.Context, req model.CreateActorRequest) (*model.ActorResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.ActorResponse, error)
	List(ctx context.Context, page utils.Pagination) ([]*model.ActorResponse, int, error)
	Update(ctx context.Context, caller shared.Principal, id uuid.UUID, req model.UpdateActorRequest) (*model.ActorResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MovieReader loads movies with their rosters. GetByActorID returns the
// actor's current movie: the one with the latest start date.
type MovieReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*moviemodel.Movie, error)
	GetByActorID(ctx context.Context, actorID uuid.UUID) (*moviemodel.Movie, error)
}

type actorService struct {
	repo   repository.ActorRepository
	movies MovieReader
	locker lock.Locker
	log    zerolog.Logger
	now    func() time.Time
}

func NewActorService(
	repo repository.ActorRepository,
	movies MovieReader,
	locker lock.Locker,
	log zerolog.Logger,
) ServiceInterface {
	return &actorService{
		repo:   repo,
		movies: movies,
		locker: locker,
		log:    log.With().Str("service", "actor").Logger(),
		now:    time.Now,
	}
}

func (s *actorService) Create(ctx context.Context, req model.CreateActorRequest) (*model.ActorResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("invalid actor", err)
	}

	now := s.now()
	a := &model.Actor{
		ID:        uuid.New(),
		Name:      req.Name,
		Bio:       req.Bio,
		Fee:       req.Fee,
		UserID:    req.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.log.Info().Str("actor_id", a.ID.String()).Uint64("fee", a.Fee).Msg("actor created")
	return model.ToResponse(a), nil
}

func (s *actorService) GetByID(ctx context.Context, id uuid.UUID) (*model.ActorResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return model.ToResponse(a), nil
}

func (s *actorService) List(ctx context.Context, page utils.Pagination) ([]*model.ActorResponse, int, error) {
	actors, total, err := s.repo.List(ctx, page.Offset(), page.Limit)
	if err != nil {
		return nil, 0, err
	}

	out := make([]*model.ActorResponse, len(actors))
	for i, a := range actors {
		out[i] = model.ToResponse(a)
	}
	return out, total, nil
}

// Update applies req to the actor. A fee change is validated against the
// actor's current movie: rejected while that movie is in production, and
// rejected when the roster with the new fee would exceed its budget.
func (s *actorService) Update(ctx context.Context, caller shared.Principal, id uuid.UUID, req model.UpdateActorRequest) (*model.ActorResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("invalid actor", err)
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(caller, a, req); err != nil {
		return nil, err
	}

	if req.Fee != nil && *req.Fee != a.Fee {
		current, release, err := s.lockFee(ctx, a.ID)
		if err != nil {
			return nil, err
		}
		defer release()

		// the actor may have changed while waiting for the locks
		if a, err = s.repo.GetByID(ctx, id); err != nil {
			return nil, err
		}
		if err := authorize(caller, a, req); err != nil {
			return nil, err
		}
		if err := s.checkFee(a, current, *req.Fee); err != nil {
			return nil, err
		}
		a.Fee = *req.Fee
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Bio != nil {
		a.Bio = *req.Bio
	}
	if req.UserID != nil {
		a.UserID = req.UserID
	}
	a.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return model.ToResponse(a), nil
}

func authorize(caller shared.Principal, a *model.Actor, req model.UpdateActorRequest) error {
	if caller.IsSuperAdministrator() {
		return nil
	}
	if !a.OwnedBy(caller.UserID) {
		return model.ErrNotOwner
	}
	if req.UserID != nil && *req.UserID != caller.UserID {
		return apperror.Forbidden("Only super administrators may relink an actor")
	}
	return nil
}

const maxLockAttempts = 3

// lockFee takes the roster lock of the actor's current movie, then the
// actor's own lock, and returns the current movie as read under both (nil
// when the actor is on no roster). If the actor joined another movie while
// the locks were being taken, it starts over.
func (s *actorService) lockFee(ctx context.Context, actorID uuid.UUID) (*moviemodel.Movie, func(), error) {
	for attempt := 0; attempt < maxLockAttempts; attempt++ {
		before, err := s.currentMovie(ctx, actorID)
		if err != nil {
			return nil, nil, err
		}

		var movieIDs []uuid.UUID
		if before != nil {
			movieIDs = append(movieIDs, before.ID)
		}
		releaseMovie, err := moviemodel.AcquireRosters(ctx, s.locker, movieIDs...)
		if err != nil {
			return nil, nil, err
		}
		releaseActor, err := moviemodel.AcquireActors(ctx, s.locker, actorID)
		if err != nil {
			releaseMovie()
			return nil, nil, err
		}
		release := func() {
			releaseActor()
			releaseMovie()
		}

		after, err := s.currentMovie(ctx, actorID)
		if err != nil {
			release()
			return nil, nil, err
		}
		if sameMovie(before, after) {
			return after, release, nil
		}
		release()
	}
	return nil, nil, moviemodel.ErrMovieBusy
}

func (s *actorService) currentMovie(ctx context.Context, actorID uuid.UUID) (*moviemodel.Movie, error) {
	m, err := s.movies.GetByActorID(ctx, actorID)
	if errors.Is(err, moviemodel.ErrMovieNotFound) {
		return nil, nil
	}
	return m, err
}

func sameMovie(a, b *moviemodel.Movie) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID
}

// checkFee validates fee against current, the actor's current movie. The
// caller holds the locks taken by lockFee.
func (s *actorService) checkFee(a *model.Actor, current *moviemodel.Movie, fee uint64) error {
	if current == nil || fee == a.Fee {
		return nil
	}

	if current.InProduction(s.now()) {
		return moviemodel.ProductionLockedError(current)
	}

	if err := budget.Check(current.Budget, current.FeesWith(a.ID, fee)); err != nil {
		s.log.Info().
			Str("actor_id", a.ID.String()).
			Str("movie_id", current.ID.String()).
			Uint64("fee", fee).
			Msg("fee change rejected by budget")
		return err
	}
	return nil
}

func (s *actorService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
