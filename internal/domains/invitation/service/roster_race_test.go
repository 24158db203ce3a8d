package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	actormodel "filmforge-backend/internal/domains/actor/model"
	actorservice "filmforge-backend/internal/domains/actor/service"
	"filmforge-backend/internal/domains/budget"
	"filmforge-backend/internal/shared"
	"filmforge-backend/internal/shared/apperror"
	"filmforge-backend/pkg/lock"
)

// studioActors is an actor repository over the studio's actors, so fee
// changes show up in the rosters the invitation workflow reads.
type studioActors struct {
	s *studio
	// beforeUpdate runs after the fee has been validated and before it is
	// stored
	beforeUpdate func()
}

func (r *studioActors) Create(_ context.Context, a *actormodel.Actor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *a
	r.s.actors[a.ID] = &cp
	return nil
}

func (r *studioActors) GetByID(ctx context.Context, id uuid.UUID) (*actormodel.Actor, error) {
	return r.s.actorStore().GetByID(ctx, id)
}

func (r *studioActors) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*actormodel.Actor, error) {
	out := make([]*actormodel.Actor, 0, len(ids))
	for _, id := range ids {
		a, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *studioActors) GetByUserID(context.Context, uuid.UUID) (*actormodel.Actor, error) {
	return nil, actormodel.ErrActorNotFound
}

func (r *studioActors) List(context.Context, int, int) ([]*actormodel.Actor, int, error) {
	return nil, 0, errors.New("not implemented")
}

func (r *studioActors) Update(_ context.Context, a *actormodel.Actor) error {
	if r.beforeUpdate != nil {
		r.beforeUpdate()
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *a
	r.s.actors[a.ID] = &cp
	return nil
}

func (r *studioActors) Delete(context.Context, uuid.UUID) error {
	return errors.New("not implemented")
}

func TestFeeRaiseAndAcceptedInvitationAreSerialized(t *testing.T) {
	f := newFixture(t)
	locker := lock.NewLocal(5 * time.Second)
	f.svc.locker = locker

	start, release := upcoming()
	movie := f.studio.addMovie(100, start, release)
	actor := f.studio.addActor(10)

	actors := &studioActors{s: f.studio}
	fees := actorservice.NewActorService(actors, f.studio, locker, zerolog.Nop())

	invited := make(chan error, 1)
	actors.beforeUpdate = func() {
		go func() {
			_, err := f.svc.Create(context.Background(), offer(movie, actor, true))
			invited <- err
		}()
		// let the invitation reach the locks before the fee is written
		time.Sleep(50 * time.Millisecond)
	}

	raised := uint64(500)
	admin := shared.Principal{UserID: uuid.New(), Role: shared.RoleSuperAdministrator}
	_, err := fees.Update(context.Background(), admin, actor, actormodel.UpdateActorRequest{Fee: &raised})
	require.NoError(t, err, "the actor is on no roster yet")

	select {
	case err = <-invited:
	case <-time.After(5 * time.Second):
		t.Fatal("invitation never finished")
	}
	assert.True(t, apperror.IsKind(err, apperror.KindBudgetExceeded), "the invitation sees the raised fee")

	m, err := f.studio.GetByID(context.Background(), movie)
	require.NoError(t, err)
	assert.False(t, m.HasActor(actor))
	assert.True(t, budget.IsWithinBudget(m.Budget, m.Fees()))
}

func TestFeeRaiseAfterAcceptedInvitationIsChecked(t *testing.T) {
	f := newFixture(t)
	locker := lock.NewLocal(5 * time.Second)
	f.svc.locker = locker

	start, release := upcoming()
	movie := f.studio.addMovie(100, start, release)
	actor := f.studio.addActor(10)

	_, err := f.svc.Create(context.Background(), offer(movie, actor, true))
	require.NoError(t, err)

	fees := actorservice.NewActorService(&studioActors{s: f.studio}, f.studio, locker, zerolog.Nop())
	raised := uint64(500)
	admin := shared.Principal{UserID: uuid.New(), Role: shared.RoleSuperAdministrator}
	_, err = fees.Update(context.Background(), admin, actor, actormodel.UpdateActorRequest{Fee: &raised})
	assert.True(t, apperror.IsKind(err, apperror.KindBudgetExceeded))

	m, _ := f.studio.GetByID(context.Background(), movie)
	assert.Equal(t, []uint64{10}, m.Fees())
}
