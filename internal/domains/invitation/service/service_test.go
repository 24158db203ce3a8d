package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	actormodel "filmforge-backend/internal/domains/actor/model"
	"filmforge-backend/internal/domains/invitation/model"
	moviemodel "filmforge-backend/internal/domains/movie/model"
	"filmforge-backend/internal/shared"
	"filmforge-backend/internal/shared/apperror"
	"filmforge-backend/pkg/lock"
)

type memoryInvitations struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*model.Invitation
}

func (r *memoryInvitations) Create(_ context.Context, inv *model.Invitation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.MovieID == inv.MovieID && existing.ActorID == inv.ActorID {
			return model.ErrInvitationExists
		}
	}
	cp := *inv
	r.byID[inv.ID] = &cp
	return nil
}

func (r *memoryInvitations) GetByID(_ context.Context, id uuid.UUID) (*model.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.byID[id]
	if !ok {
		return nil, model.ErrInvitationNotFound
	}
	cp := *inv
	return &cp, nil
}

func (r *memoryInvitations) GetByActorAndMovie(_ context.Context, actorID, movieID uuid.UUID) (*model.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inv := range r.byID {
		if inv.ActorID == actorID && inv.MovieID == movieID {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, model.ErrInvitationNotFound
}

func (r *memoryInvitations) filter(keep func(*model.Invitation) bool) []*model.Invitation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*model.Invitation{}
	for _, inv := range r.byID {
		if keep(inv) {
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out
}

func (r *memoryInvitations) ListByActor(_ context.Context, actorID uuid.UUID) ([]*model.Invitation, error) {
	return r.filter(func(inv *model.Invitation) bool { return inv.ActorID == actorID }), nil
}

func (r *memoryInvitations) ListByMovie(_ context.Context, movieID uuid.UUID) ([]*model.Invitation, error) {
	return r.filter(func(inv *model.Invitation) bool { return inv.MovieID == movieID }), nil
}

func (r *memoryInvitations) List(_ context.Context, _, _ int) ([]*model.Invitation, int, error) {
	all := r.filter(func(*model.Invitation) bool { return true })
	return all, len(all), nil
}

func (r *memoryInvitations) Update(_ context.Context, inv *model.Invitation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[inv.ID]; !ok {
		return model.ErrInvitationNotFound
	}
	cp := *inv
	r.byID[inv.ID] = &cp
	return nil
}

func (r *memoryInvitations) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return model.ErrInvitationNotFound
	}
	delete(r.byID, id)
	return nil
}

type studio struct {
	mu     sync.Mutex
	movies map[uuid.UUID]*moviemodel.Movie
	actors map[uuid.UUID]*actormodel.Actor
	// delay widens the window between reading a roster and writing it
	delay time.Duration
}

func (s *studio) GetByID(_ context.Context, id uuid.UUID) (*moviemodel.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.movies[id]
	if !ok {
		return nil, moviemodel.ErrMovieNotFound
	}
	return s.snapshot(m), nil
}

// snapshot copies m with each roster fee read from the actor, as the roster
// query joins them. Callers hold s.mu.
func (s *studio) snapshot(m *moviemodel.Movie) *moviemodel.Movie {
	cp := *m
	cp.Roster = make([]moviemodel.RosterEntry, len(m.Roster))
	for i, e := range m.Roster {
		if a, ok := s.actors[e.ActorID]; ok {
			e.Fee = a.Fee
		}
		cp.Roster[i] = e
	}
	return &cp
}

func (s *studio) GetByActorID(_ context.Context, actorID uuid.UUID) (*moviemodel.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var current *moviemodel.Movie
	for _, m := range s.movies {
		if m.HasActor(actorID) && (current == nil || m.StartDate.After(current.StartDate)) {
			current = m
		}
	}
	if current == nil {
		return nil, moviemodel.ErrMovieNotFound
	}
	return s.snapshot(current), nil
}

func (s *studio) AddActor(_ context.Context, movieID, actorID uuid.UUID) error {
	time.Sleep(s.delay)
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.movies[movieID]
	if !ok {
		return moviemodel.ErrMovieNotFound
	}
	if !m.HasActor(actorID) {
		a := s.actors[actorID]
		m.Roster = append(m.Roster, moviemodel.RosterEntry{ActorID: a.ID, Name: a.Name, Fee: a.Fee})
	}
	return nil
}

func (s *studio) RemoveActor(_ context.Context, movieID, actorID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.movies[movieID]
	if !ok {
		return moviemodel.ErrMovieNotFound
	}
	kept := make([]moviemodel.RosterEntry, 0, len(m.Roster))
	for _, e := range m.Roster {
		if e.ActorID != actorID {
			kept = append(kept, e)
		}
	}
	m.Roster = kept
	return nil
}

func (s *studio) actorStore() actorLookup { return actorLookup{s} }

type actorLookup struct{ s *studio }

func (l actorLookup) GetByID(_ context.Context, id uuid.UUID) (*actormodel.Actor, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	a, ok := l.s.actors[id]
	if !ok {
		return nil, actormodel.ErrActorNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *studio) addActor(fee uint64) uuid.UUID {
	a := &actormodel.Actor{ID: uuid.New(), Name: "actor", Fee: fee}
	s.actors[a.ID] = a
	return a.ID
}

func (s *studio) addMovie(budget uint64, start, release time.Time, rosterFees ...uint64) uuid.UUID {
	m := &moviemodel.Movie{ID: uuid.New(), Title: "Harbor Lights", Budget: budget, StartDate: start, ReleaseDate: release}
	for _, f := range rosterFees {
		id := s.addActor(f)
		m.Roster = append(m.Roster, moviemodel.RosterEntry{ActorID: id, Fee: f})
	}
	s.movies[m.ID] = m
	return m.ID
}

type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []shared.InvitationNotifyPayload
	err    error
}

func (n *recordingNotifier) NotifyInvitation(_ context.Context, p shared.InvitationNotifyPayload) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, p)
	return n.err
}

var fixedNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	svc      *invitationService
	repo     *memoryInvitations
	studio   *studio
	notifier *recordingNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		repo:     &memoryInvitations{byID: map[uuid.UUID]*model.Invitation{}},
		studio:   &studio{movies: map[uuid.UUID]*moviemodel.Movie{}, actors: map[uuid.UUID]*actormodel.Actor{}},
		notifier: &recordingNotifier{},
	}
	f.svc = NewInvitationService(f.repo, f.studio, f.studio.actorStore(), passthroughTx{},
		lock.NewLocal(5*time.Second), f.notifier, zerolog.Nop()).(*invitationService)
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func upcoming() (time.Time, time.Time) {
	return fixedNow.AddDate(0, 1, 0), fixedNow.AddDate(0, 6, 0)
}

func offer(movieID, actorID uuid.UUID, accepted bool) model.InvitationRequest {
	return model.InvitationRequest{MovieID: movieID, ActorID: actorID, Kind: model.KindOffer, HasAccepted: accepted}
}

func TestCreate_BudgetBoundary(t *testing.T) {
	f := newFixture(t)
	start, release := upcoming()
	movie := f.studio.addMovie(100, start, release, 40, 30)

	cheap := f.studio.addActor(20)
	resp, err := f.svc.Create(context.Background(), offer(movie, cheap, false))
	require.NoError(t, err, "40 + 30 + 20 fits 100")
	assert.Equal(t, fixedNow, resp.CreatedAt)
	assert.Equal(t, fixedNow, resp.UpdatedAt)

	pricey := f.studio.addActor(40)
	_, err = f.svc.Create(context.Background(), offer(movie, pricey, false))
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindBudgetExceeded), "40 + 30 + 40 exceeds 100")

	assert.Len(t, f.repo.byID, 1, "rejected invitation is not persisted")
	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, shared.InvitationCreated, f.notifier.events[0].Event)
}

func TestCreate_UnknownMovieOrActor(t *testing.T) {
	f := newFixture(t)
	start, release := upcoming()
	movie := f.studio.addMovie(100, start, release)
	actor := f.studio.addActor(10)

	_, err := f.svc.Create(context.Background(), offer(uuid.New(), actor, true))
	assert.True(t, errors.Is(err, moviemodel.ErrMovieNotFound))

	_, err = f.svc.Create(context.Background(), offer(movie, uuid.New(), true))
	assert.True(t, errors.Is(err, actormodel.ErrActorNotFound))

	assert.Empty(t, f.repo.byID)
	assert.Empty(t, f.notifier.events)
}

func TestCreate_AcceptedJoinsRoster(t *testing.T) {
	f := newFixture(t)
	start, release := upcoming()
	movie := f.studio.addMovie(100, start, release, 50)
	actor := f.studio.addActor(50)

	_, err := f.svc.Create(context.Background(), offer(movie, actor, true))
	require.NoError(t, err)

	m, _ := f.studio.GetByID(context.Background(), movie)
	assert.True(t, m.HasActor(actor))
	assert.Equal(t, shared.InvitationAccepted, f.notifier.events[0].Event)
}

func TestCreate_RosteredActorIsNotCountedTwice(t *testing.T) {
	f := newFixture(t)
	start, release := upcoming()
	movie := f.studio.addMovie(100, start, release)
	actor := f.studio.addActor(60)
	require.NoError(t, f.studio.AddActor(context.Background(), movie, actor))

	_, err := f.svc.Create(context.Background(), model.InvitationRequest{
		MovieID: movie, ActorID: actor, Kind: model.KindConfirmation, HasAccepted: true,
	})
	require.NoError(t, err, "60 counted once fits 100")
}

func TestCreate_LockedInByAnotherProduction(t *testing.T) {
	f := newFixture(t)
	shooting := f.studio.addMovie(1000, fixedNow.AddDate(0, -1, 0), fixedNow.AddDate(0, 1, 0))
	actor := f.studio.addActor(10)
	require.NoError(t, f.studio.AddActor(context.Background(), shooting, actor))

	start, release := upcoming()
	next := f.studio.addMovie(5, start, release)

	_, err := f.svc.Create(context.Background(), offer(next, actor, false))
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindProductionLocked), "checked before the budget")

	other := f.studio.addActor(1)
	_, err = f.svc.Create(context.Background(), offer(shooting, other, false))
	assert.NoError(t, err, "inviting into the running production itself is allowed")
}

func TestCreate_ConcurrentAcceptedInvitations(t *testing.T) {
	f := newFixture(t)
	f.studio.delay = 20 * time.Millisecond
	start, release := upcoming()
	movie := f.studio.addMovie(100, start, release, 40)
	first := f.studio.addActor(50)
	second := f.studio.addActor(50)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, actor := range []uuid.UUID{first, second} {
		wg.Add(1)
		go func(i int, actor uuid.UUID) {
			defer wg.Done()
			_, errs[i] = f.svc.Create(context.Background(), offer(movie, actor, true))
		}(i, actor)
	}
	wg.Wait()

	var ok, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case apperror.IsKind(err, apperror.KindBudgetExceeded):
			rejected++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, rejected)

	m, _ := f.studio.GetByID(context.Background(), movie)
	assert.Equal(t, []uint64{40, 50}, m.Fees(), "stored roster stays within budget")
}

func TestUpdate_AcceptanceFlipJoinsRoster(t *testing.T) {
	f := newFixture(t)
	start, release := upcoming()
	movie := f.studio.addMovie(100, start, release)
	actor := f.studio.addActor(70)

	created, err := f.svc.Create(context.Background(), offer(movie, actor, false))
	require.NoError(t, err)

	f.svc.now = func() time.Time { return fixedNow.Add(time.Hour) }
	updated, err := f.svc.Update(context.Background(), created.ID, model.InvitationRequest{
		MovieID: movie, ActorID: actor, Kind: model.KindConfirmation, HasAccepted: true,
	})
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, fixedNow.Add(time.Hour), updated.UpdatedAt)
	assert.Equal(t, model.KindConfirmation, updated.Kind)

	m, _ := f.studio.GetByID(context.Background(), movie)
	assert.True(t, m.HasActor(actor))
	assert.Equal(t, shared.InvitationAccepted, f.notifier.events[len(f.notifier.events)-1].Event)
}

func TestUpdate_RevalidatesBudget(t *testing.T) {
	f := newFixture(t)
	start, release := upcoming()
	roomy := f.studio.addMovie(100, start, release)
	tight := f.studio.addMovie(30, start, release)
	actor := f.studio.addActor(50)

	created, err := f.svc.Create(context.Background(), offer(roomy, actor, false))
	require.NoError(t, err)

	_, err = f.svc.Update(context.Background(), created.ID, offer(tight, actor, false))
	assert.True(t, apperror.IsKind(err, apperror.KindBudgetExceeded))

	stored, _ := f.repo.GetByID(context.Background(), created.ID)
	assert.Equal(t, roomy, stored.MovieID, "rejected update leaves the invitation untouched")

	_, err = f.svc.Update(context.Background(), uuid.New(), offer(roomy, actor, false))
	assert.True(t, errors.Is(err, model.ErrInvitationNotFound))
}

func TestCreate_NotifierFailureIsNotSurfaced(t *testing.T) {
	f := newFixture(t)
	f.notifier.err = errors.New("queue unavailable")
	start, release := upcoming()
	movie := f.studio.addMovie(100, start, release)
	actor := f.studio.addActor(10)

	_, err := f.svc.Create(context.Background(), offer(movie, actor, false))
	assert.NoError(t, err)
}

func TestCreate_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), model.InvitationRequest{MovieID: uuid.New(), ActorID: uuid.New(), Kind: "handshake"})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = f.svc.Create(context.Background(), model.InvitationRequest{ActorID: uuid.New(), Kind: model.KindOffer})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestLookups(t *testing.T) {
	f := newFixture(t)
	start, release := upcoming()
	movie := f.studio.addMovie(100, start, release)
	actor := f.studio.addActor(10)

	created, err := f.svc.Create(context.Background(), offer(movie, actor, false))
	require.NoError(t, err)

	got, err := f.svc.GetByActorAndMovie(context.Background(), actor, movie)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	byActor, err := f.svc.ListByActor(context.Background(), actor)
	require.NoError(t, err)
	assert.Len(t, byActor, 1)

	byMovie, err := f.svc.ListByMovie(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, byMovie)

	require.NoError(t, f.svc.Delete(context.Background(), created.ID))
	_, err = f.svc.GetByID(context.Background(), created.ID)
	assert.True(t, errors.Is(err, model.ErrInvitationNotFound))
}

func TestUpdate_ConcurrentAcceptanceNotifiesOnce(t *testing.T) {
	f := newFixture(t)
	f.studio.delay = 20 * time.Millisecond
	start, release := upcoming()
	movie := f.studio.addMovie(100, start, release)
	actor := f.studio.addActor(30)

	created, err := f.svc.Create(context.Background(), offer(movie, actor, false))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Update(context.Background(), created.ID, offer(movie, actor, true))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var accepted int
	for _, e := range f.notifier.events {
		if e.Event == shared.InvitationAccepted {
			accepted++
		}
	}
	assert.Equal(t, 1, accepted, "the second update sees the first one's acceptance")
}

func TestUpdate_WithdrawnAcceptanceLeavesRoster(t *testing.T) {
	f := newFixture(t)
	start, release := upcoming()
	movie := f.studio.addMovie(100, start, release, 20)
	actor := f.studio.addActor(50)

	created, err := f.svc.Create(context.Background(), offer(movie, actor, true))
	require.NoError(t, err)

	_, err = f.svc.Update(context.Background(), created.ID, offer(movie, actor, false))
	require.NoError(t, err)

	m, _ := f.studio.GetByID(context.Background(), movie)
	assert.False(t, m.HasActor(actor))
	assert.Equal(t, []uint64{20}, m.Fees(), "the rest of the roster is untouched")
}

func TestUpdate_MovedAcceptanceFollowsInvitation(t *testing.T) {
	f := newFixture(t)
	start, release := upcoming()
	first := f.studio.addMovie(100, start, release)
	second := f.studio.addMovie(100, start.AddDate(0, 1, 0), release.AddDate(0, 1, 0))
	actor := f.studio.addActor(50)

	created, err := f.svc.Create(context.Background(), offer(first, actor, true))
	require.NoError(t, err)

	_, err = f.svc.Update(context.Background(), created.ID, offer(second, actor, true))
	require.NoError(t, err)

	old, _ := f.studio.GetByID(context.Background(), first)
	assert.False(t, old.HasActor(actor))
	moved, _ := f.studio.GetByID(context.Background(), second)
	assert.True(t, moved.HasActor(actor))
}

func TestCreate_WaitsForActorFeeLock(t *testing.T) {
	f := newFixture(t)
	locker := lock.NewLocal(20 * time.Millisecond)
	f.svc.locker = locker
	start, release := upcoming()
	movie := f.studio.addMovie(100, start, release)
	actor := f.studio.addActor(10)

	held, err := locker.Acquire(context.Background(), moviemodel.ActorLockKey(actor))
	require.NoError(t, err)
	defer held()

	_, err = f.svc.Create(context.Background(), offer(movie, actor, true))
	assert.ErrorIs(t, err, moviemodel.ErrMovieBusy)
	assert.Empty(t, f.repo.byID)
}
