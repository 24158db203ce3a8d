package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	actormodel "filmforge-backend/internal/domains/actor/model"
	"filmforge-backend/internal/domains/budget"
	"filmforge-backend/internal/domains/invitation/model"
	"filmforge-backend/internal/domains/invitation/repository"
	moviemodel "filmforge-backend/internal/domains/movie/model"
	"filmforge-backend/internal/infrastructure/database"
	"filmforge-backend/internal/shared"
	"filmforge-backend/internal/shared/apperror"
	"filmforge-backend/internal/shared/utils"
	"filmforge-backend/pkg/lock"
)

type ServiceInterface interface {
	Create(ctx context.Context, req model.InvitationRequest) (*model.InvitationResponse, error)
	Update(ctx context.Context, id uuid.UUID, req model.InvitationRequest) (*model.InvitationResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.InvitationResponse, error)
	GetByActorAndMovie(ctx context.Context, actorID, movieID uuid.UUID) (*model.InvitationResponse, error)
	ListByActor(ctx context.Context, actorID uuid.UUID) ([]*model.InvitationResponse, error)
	ListByMovie(ctx context.Context, movieID uuid.UUID) ([]*model.InvitationResponse, error)
	List(ctx context.Context, page utils.Pagination) ([]*model.InvitationResponse, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MovieStore is the part of the movie repository the workflow needs.
type MovieStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*moviemodel.Movie, error)
	GetByActorID(ctx context.Context, actorID uuid.UUID) (*moviemodel.Movie, error)
	AddActor(ctx context.Context, movieID, actorID uuid.UUID) error
	RemoveActor(ctx context.Context, movieID, actorID uuid.UUID) error
}

type ActorStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*actormodel.Actor, error)
}

// Notifier tells an actor about an invitation. Delivery is best effort.
type Notifier interface {
	NotifyInvitation(ctx context.Context, payload shared.InvitationNotifyPayload) error
}

type invitationService struct {
	repo     repository.InvitationRepository
	movies   MovieStore
	actors   ActorStore
	tx       database.Transactor
	locker   lock.Locker
	notifier Notifier
	log      zerolog.Logger
	now      func() time.Time
}

func NewInvitationService(
	repo repository.InvitationRepository,
	movies MovieStore,
	actors ActorStore,
	tx database.Transactor,
	locker lock.Locker,
	notifier Notifier,
	log zerolog.Logger,
) ServiceInterface {
	return &invitationService{
		repo:     repo,
		movies:   movies,
		actors:   actors,
		tx:       tx,
		locker:   locker,
		notifier: notifier,
		log:      log.With().Str("service", "invitation").Logger(),
		now:      time.Now,
	}
}

// Create invites an actor to a movie. The actor's fee must fit the movie's
// budget together with the current roster, and the actor must not be locked
// in by another movie in production. Accepted invitations add the actor to
// the roster in the same transaction.
func (s *invitationService) Create(ctx context.Context, req model.InvitationRequest) (*model.InvitationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("invalid invitation", err)
	}

	release, err := s.lock(ctx, []uuid.UUID{req.MovieID}, []uuid.UUID{req.ActorID})
	if err != nil {
		return nil, err
	}
	defer release()

	now := s.now()
	if err := s.admit(ctx, req.MovieID, req.ActorID, now); err != nil {
		return nil, err
	}

	inv := &model.Invitation{
		ID:          uuid.New(),
		HasAccepted: req.HasAccepted,
		Kind:        req.Kind,
		MovieID:     req.MovieID,
		ActorID:     req.ActorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, inv); err != nil {
			return err
		}
		if inv.HasAccepted {
			return s.movies.AddActor(ctx, inv.MovieID, inv.ActorID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("invitation_id", inv.ID.String()).
		Str("movie_id", inv.MovieID.String()).
		Str("actor_id", inv.ActorID.String()).
		Bool("has_accepted", inv.HasAccepted).
		Msg("invitation created")

	event := shared.InvitationCreated
	if inv.HasAccepted {
		event = shared.InvitationAccepted
	}
	s.notify(ctx, inv, event)

	return model.ToResponse(inv), nil
}

// Update replaces the invitation's fields after running the same checks as
// Create for the requested movie and actor. An accepted invitation that is
// withdrawn, or moved to another movie or actor, takes its actor off the
// old roster.
func (s *invitationService) Update(ctx context.Context, id uuid.UUID, req model.InvitationRequest) (*model.InvitationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("invalid invitation", err)
	}

	inv, release, err := s.lockExisting(ctx, id, req)
	if err != nil {
		return nil, err
	}
	defer release()

	now := s.now()
	if err := s.admit(ctx, req.MovieID, req.ActorID, now); err != nil {
		return nil, err
	}

	accepted := !inv.HasAccepted && req.HasAccepted
	leaving := inv.HasAccepted &&
		(!req.HasAccepted || inv.MovieID != req.MovieID || inv.ActorID != req.ActorID)
	oldMovie, oldActor := inv.MovieID, inv.ActorID

	inv.HasAccepted = req.HasAccepted
	inv.Kind = req.Kind
	inv.MovieID = req.MovieID
	inv.ActorID = req.ActorID
	inv.UpdatedAt = now

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, inv); err != nil {
			return err
		}
		if leaving {
			if err := s.movies.RemoveActor(ctx, oldMovie, oldActor); err != nil {
				return err
			}
		}
		if inv.HasAccepted {
			return s.movies.AddActor(ctx, inv.MovieID, inv.ActorID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if leaving {
		s.log.Info().
			Str("invitation_id", inv.ID.String()).
			Str("movie_id", oldMovie.String()).
			Str("actor_id", oldActor.String()).
			Msg("actor removed from roster")
	}

	event := shared.InvitationUpdated
	if accepted {
		event = shared.InvitationAccepted
	}
	s.notify(ctx, inv, event)

	return model.ToResponse(inv), nil
}

const maxLockAttempts = 3

// lockExisting locks the movies and actors of both the stored invitation and
// req, then returns the invitation as read under those locks. If another
// update moved the invitation in the meantime, it starts over.
func (s *invitationService) lockExisting(ctx context.Context, id uuid.UUID, req model.InvitationRequest) (*model.Invitation, func(), error) {
	for attempt := 0; attempt < maxLockAttempts; attempt++ {
		seen, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, nil, err
		}

		release, err := s.lock(ctx,
			[]uuid.UUID{seen.MovieID, req.MovieID},
			[]uuid.UUID{seen.ActorID, req.ActorID})
		if err != nil {
			return nil, nil, err
		}

		inv, err := s.repo.GetByID(ctx, id)
		if err != nil {
			release()
			return nil, nil, err
		}
		if inv.MovieID == seen.MovieID && inv.ActorID == seen.ActorID {
			return inv, release, nil
		}
		release()
	}
	return nil, nil, moviemodel.ErrMovieBusy
}

// lock takes the roster locks of movieIDs, then the fee locks of actorIDs.
func (s *invitationService) lock(ctx context.Context, movieIDs, actorIDs []uuid.UUID) (func(), error) {
	releaseMovies, err := moviemodel.AcquireRosters(ctx, s.locker, movieIDs...)
	if err != nil {
		return nil, err
	}
	releaseActors, err := moviemodel.AcquireActors(ctx, s.locker, actorIDs...)
	if err != nil {
		releaseMovies()
		return nil, err
	}
	return func() {
		releaseActors()
		releaseMovies()
	}, nil
}

// admit loads the movie and the actor and verifies the actor can join the
// movie: not locked in by another movie in production, and within budget.
// The caller must hold the movie's roster lock and the actor's fee lock.
func (s *invitationService) admit(ctx context.Context, movieID, actorID uuid.UUID, now time.Time) error {
	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return err
	}
	actor, err := s.actors.GetByID(ctx, actorID)
	if err != nil {
		return err
	}

	current, err := s.movies.GetByActorID(ctx, actor.ID)
	switch {
	case errors.Is(err, moviemodel.ErrMovieNotFound):
	case err != nil:
		return err
	case current.ID != movie.ID && current.InProduction(now):
		return moviemodel.ProductionLockedError(current)
	}

	if err := budget.Check(movie.Budget, movie.FeesWith(actor.ID, actor.Fee)); err != nil {
		s.log.Info().
			Str("movie_id", movie.ID.String()).
			Str("actor_id", actor.ID.String()).
			Uint64("fee", actor.Fee).
			Uint64("budget", movie.Budget).
			Msg("invitation rejected by budget")
		return err
	}
	return nil
}

func (s *invitationService) notify(ctx context.Context, inv *model.Invitation, event shared.InvitationEvent) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.NotifyInvitation(ctx, shared.InvitationNotifyPayload{
		InvitationID: inv.ID,
		MovieID:      inv.MovieID,
		ActorID:      inv.ActorID,
		Event:        event,
	})
	if err != nil {
		s.log.Warn().Err(err).
			Str("invitation_id", inv.ID.String()).
			Str("event", string(event)).
			Msg("failed to enqueue invitation notification")
	}
}

func (s *invitationService) GetByID(ctx context.Context, id uuid.UUID) (*model.InvitationResponse, error) {
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return model.ToResponse(inv), nil
}

func (s *invitationService) GetByActorAndMovie(ctx context.Context, actorID, movieID uuid.UUID) (*model.InvitationResponse, error) {
	inv, err := s.repo.GetByActorAndMovie(ctx, actorID, movieID)
	if err != nil {
		return nil, err
	}
	return model.ToResponse(inv), nil
}

func (s *invitationService) ListByActor(ctx context.Context, actorID uuid.UUID) ([]*model.InvitationResponse, error) {
	invs, err := s.repo.ListByActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return model.ToResponses(invs), nil
}

func (s *invitationService) ListByMovie(ctx context.Context, movieID uuid.UUID) ([]*model.InvitationResponse, error) {
	invs, err := s.repo.ListByMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}
	return model.ToResponses(invs), nil
}

func (s *invitationService) List(ctx context.Context, page utils.Pagination) ([]*model.InvitationResponse, int, error) {
	invs, total, err := s.repo.List(ctx, page.Offset(), page.Limit)
	if err != nil {
		return nil, 0, err
	}
	return model.ToResponses(invs), total, nil
}

func (s *invitationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
