package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	actormodel "filmforge-backend/internal/domains/actor/model"
	"filmforge-backend/internal/domains/budget"
	directormodel "filmforge-backend/internal/domains/director/model"
	"filmforge-backend/internal/domains/genre"
	"filmforge-backend/internal/domains/movie/model"
	"filmforge-backend/internal/domains/movie/repository"
	"filmforge-backend/internal/infrastructure/database"
	"filmforge-backend/internal/shared/apperror"
	"filmforge-backend/internal/shared/utils"
	"filmforge-backend/pkg/lock"
)

type ServiceInterface interface {
	Create(ctx context.Context, req model.CreateMovieRequest) (*model.MovieResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.MovieResponse, error)
	List(ctx context.Context, filter model.ListFilter, page utils.Pagination) ([]*model.MovieResponse, int, error)
	// GetCurrentByActor returns the movie the actor is currently cast in.
	GetCurrentByActor(ctx context.Context, actorID uuid.UUID) (*model.MovieResponse, error)
	BudgetSummary(ctx context.Context, id uuid.UUID) (*model.BudgetResponse, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateMovieRequest) (*model.MovieResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// AuditBudgets scans up to limit movies (all when limit <= 0) and
	// returns those whose roster exceeds the budget.
	AuditBudgets(ctx context.Context, limit int) ([]*model.BudgetResponse, error)
}

type ActorLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*actormodel.Actor, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*actormodel.Actor, error)
}

type GenreLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*genre.Genre, error)
}

type DirectorLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*directormodel.Director, error)
}

type movieService struct {
	repo      repository.MovieRepository
	actors    ActorLookup
	genres    GenreLookup
	directors DirectorLookup
	tx        database.Transactor
	locker    lock.Locker
	log       zerolog.Logger
	now       func() time.Time
}

func NewMovieService(
	repo repository.MovieRepository,
	actors ActorLookup,
	genres GenreLookup,
	directors DirectorLookup,
	tx database.Transactor,
	locker lock.Locker,
	log zerolog.Logger,
) ServiceInterface {
	return &movieService{
		repo:      repo,
		actors:    actors,
		genres:    genres,
		directors: directors,
		tx:        tx,
		locker:    locker,
		log:       log.With().Str("service", "movie").Logger(),
		now:       time.Now,
	}
}

func (s *movieService) Create(ctx context.Context, req model.CreateMovieRequest) (*model.MovieResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("invalid movie", err)
	}
	if err := s.checkReferences(ctx, &req.GenreID, &req.DirectorID); err != nil {
		return nil, err
	}

	release, err := model.AcquireActors(ctx, s.locker, req.ActorIDs...)
	if err != nil {
		return nil, err
	}
	defer release()

	now := s.now()
	roster, err := s.buildRoster(ctx, uuid.Nil, nil, req.ActorIDs, now)
	if err != nil {
		return nil, err
	}

	m := &model.Movie{
		ID:          uuid.New(),
		Title:       req.Title,
		Budget:      req.Budget,
		StartDate:   req.StartDate,
		ReleaseDate: req.ReleaseDate,
		GenreID:     req.GenreID,
		DirectorID:  req.DirectorID,
		Roster:      roster,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := budget.Check(m.Budget, m.Fees()); err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, m); err != nil {
			return err
		}
		return s.repo.ReplaceRoster(ctx, m.ID, m.ActorIDs())
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("movie_id", m.ID.String()).
		Uint64("budget", m.Budget).
		Int("actors", len(m.Roster)).
		Msg("movie created")
	return model.ToResponse(m), nil
}

func (s *movieService) GetByID(ctx context.Context, id uuid.UUID) (*model.MovieResponse, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return model.ToResponse(m), nil
}

func (s *movieService) List(ctx context.Context, filter model.ListFilter, page utils.Pagination) ([]*model.MovieResponse, int, error) {
	movies, total, err := s.repo.List(ctx, filter, page.Offset(), page.Limit)
	if err != nil {
		return nil, 0, err
	}

	out := make([]*model.MovieResponse, len(movies))
	for i, m := range movies {
		out[i] = model.ToResponse(m)
	}
	return out, total, nil
}

func (s *movieService) GetCurrentByActor(ctx context.Context, actorID uuid.UUID) (*model.MovieResponse, error) {
	if _, err := s.actors.GetByID(ctx, actorID); err != nil {
		return nil, err
	}

	m, err := s.repo.GetByActorID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return model.ToResponse(m), nil
}

func (s *movieService) BudgetSummary(ctx context.Context, id uuid.UUID) (*model.BudgetResponse, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return model.ToBudgetResponse(m), nil
}

// Update applies req while holding the movie's roster lock. The budget is
// re-validated whenever the budget or the roster changes; in that case the
// fee locks of every actor on the old and the new roster are held too.
func (s *movieService) Update(ctx context.Context, id uuid.UUID, req model.UpdateMovieRequest) (*model.MovieResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("invalid movie", err)
	}

	release, err := model.AcquireRoster(ctx, s.locker, id)
	if err != nil {
		return nil, err
	}
	defer release()

	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Budget != nil || req.ActorIDs != nil {
		actorIDs := m.ActorIDs()
		if req.ActorIDs != nil {
			actorIDs = append(actorIDs, *req.ActorIDs...)
		}
		releaseActors, err := model.AcquireActors(ctx, s.locker, actorIDs...)
		if err != nil {
			return nil, err
		}
		defer releaseActors()

		// fees may have changed while waiting for the actor locks
		if m, err = s.repo.GetByID(ctx, id); err != nil {
			return nil, err
		}
	}

	if err := s.checkReferences(ctx, req.GenreID, req.DirectorID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		m.Title = *req.Title
	}
	if req.StartDate != nil {
		m.StartDate = *req.StartDate
	}
	if req.ReleaseDate != nil {
		m.ReleaseDate = *req.ReleaseDate
	}
	if m.ReleaseDate.Before(m.StartDate) {
		return nil, apperror.Validation("invalid movie", errors.New("release_date must not be before start_date"))
	}
	if req.GenreID != nil {
		m.GenreID = *req.GenreID
	}
	if req.DirectorID != nil {
		m.DirectorID = *req.DirectorID
	}

	recheck := false
	if req.Budget != nil && *req.Budget != m.Budget {
		m.Budget = *req.Budget
		recheck = true
	}
	if req.ActorIDs != nil {
		roster, err := s.buildRoster(ctx, m.ID, m.Roster, *req.ActorIDs, s.now())
		if err != nil {
			return nil, err
		}
		m.Roster = roster
		recheck = true
	}
	if recheck {
		if err := budget.Check(m.Budget, m.Fees()); err != nil {
			return nil, err
		}
	}
	m.UpdatedAt = s.now()

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, m); err != nil {
			return err
		}
		if req.ActorIDs == nil {
			return nil
		}
		return s.repo.ReplaceRoster(ctx, m.ID, m.ActorIDs())
	})
	if err != nil {
		return nil, err
	}
	return model.ToResponse(m), nil
}

func (s *movieService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("movie_id", id.String()).Msg("movie deleted")
	return nil
}

const auditPageSize = 100

func (s *movieService) AuditBudgets(ctx context.Context, limit int) ([]*model.BudgetResponse, error) {
	var (
		over    []*model.BudgetResponse
		scanned int
	)
	for offset := 0; ; offset += auditPageSize {
		size := auditPageSize
		if limit > 0 && limit-scanned < size {
			size = limit - scanned
		}
		if size <= 0 {
			break
		}

		movies, _, err := s.repo.List(ctx, model.ListFilter{}, offset, size)
		if err != nil {
			return nil, err
		}
		for _, m := range movies {
			if summary := model.ToBudgetResponse(m); summary.OverBudget {
				over = append(over, summary)
			}
		}
		scanned += len(movies)
		if len(movies) < size {
			break
		}
	}
	return over, nil
}

func (s *movieService) checkReferences(ctx context.Context, genreID, directorID *uuid.UUID) error {
	if genreID != nil {
		if _, err := s.genres.GetByID(ctx, *genreID); err != nil {
			return err
		}
	}
	if directorID != nil {
		if _, err := s.directors.GetByID(ctx, *directorID); err != nil {
			return err
		}
	}
	return nil
}

// buildRoster loads the actors in ids, dropping duplicates. Actors not
// already on current must not be locked in by another movie in production.
// The caller holds the fee locks of ids.
func (s *movieService) buildRoster(ctx context.Context, movieID uuid.UUID, current []model.RosterEntry, ids []uuid.UUID, now time.Time) ([]model.RosterEntry, error) {
	seen := make(map[uuid.UUID]bool, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	actors, err := s.actors.GetByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}

	onRoster := make(map[uuid.UUID]bool, len(current))
	for _, e := range current {
		onRoster[e.ActorID] = true
	}

	roster := make([]model.RosterEntry, len(actors))
	for i, a := range actors {
		if !onRoster[a.ID] {
			if err := s.checkAvailable(ctx, movieID, a.ID, now); err != nil {
				return nil, err
			}
		}
		roster[i] = model.RosterEntry{ActorID: a.ID, Name: a.Name, Fee: a.Fee}
	}
	return roster, nil
}

func (s *movieService) checkAvailable(ctx context.Context, movieID, actorID uuid.UUID, now time.Time) error {
	busy, err := s.repo.GetByActorID(ctx, actorID)
	switch {
	case errors.Is(err, model.ErrMovieNotFound):
		return nil
	case err != nil:
		return err
	case busy.ID != movieID && busy.InProduction(now):
		return model.ProductionLockedError(busy)
	}
	return nil
}
