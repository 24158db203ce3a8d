package job

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	actormodel "filmforge-backend/internal/domains/actor/model"
	"filmforge-backend/internal/domains/invitation/model"
	moviemodel "filmforge-backend/internal/domains/movie/model"
	"filmforge-backend/internal/domains/user"
	"filmforge-backend/internal/infrastructure/email"
	"filmforge-backend/internal/shared"
)

type world struct {
	invitation *model.Invitation
	actor      *actormodel.Actor
	movie      *moviemodel.Movie
	user       *user.User
}

func (w *world) invitations() InvitationReader { return invitationsFn(w.getInvitation) }

type invitationsFn func(uuid.UUID) (*model.Invitation, error)

func (f invitationsFn) GetByID(_ context.Context, id uuid.UUID) (*model.Invitation, error) { return f(id) }

func (w *world) getInvitation(id uuid.UUID) (*model.Invitation, error) {
	if w.invitation == nil || w.invitation.ID != id {
		return nil, model.ErrInvitationNotFound
	}
	return w.invitation, nil
}

type actorsFn func(uuid.UUID) (*actormodel.Actor, error)

func (f actorsFn) GetByID(_ context.Context, id uuid.UUID) (*actormodel.Actor, error) { return f(id) }

type moviesFn func(uuid.UUID) (*moviemodel.Movie, error)

func (f moviesFn) GetByID(_ context.Context, id uuid.UUID) (*moviemodel.Movie, error) { return f(id) }

type usersFn func(uuid.UUID) (*user.User, error)

func (f usersFn) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) { return f(id) }

type recordingMailer struct {
	sent []email.InvitationEmailData
}

func (m *recordingMailer) SendInvitationEmail(_ context.Context, data email.InvitationEmailData) error {
	m.sent = append(m.sent, data)
	return nil
}

func newWorld(linked bool) *world {
	u := &user.User{ID: uuid.New(), Email: "ada@example.com", Role: shared.RoleActor}
	a := &actormodel.Actor{ID: uuid.New(), Name: "Ada Stone", Fee: 10}
	if linked {
		a.UserID = &u.ID
	}
	m := &moviemodel.Movie{ID: uuid.New(), Title: "Harbor Lights",
		StartDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), ReleaseDate: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)}
	inv := &model.Invitation{ID: uuid.New(), Kind: model.KindOffer, MovieID: m.ID, ActorID: a.ID}
	return &world{invitation: inv, actor: a, movie: m, user: u}
}

func (w *world) handler(mailer email.EmailService) *NotifyHandler {
	return NewNotifyHandler(
		w.invitations(),
		actorsFn(func(uuid.UUID) (*actormodel.Actor, error) { return w.actor, nil }),
		moviesFn(func(uuid.UUID) (*moviemodel.Movie, error) { return w.movie, nil }),
		usersFn(func(uuid.UUID) (*user.User, error) { return w.user, nil }),
		mailer,
		zerolog.Nop(),
	)
}

func task(t *testing.T, invitationID uuid.UUID) *asynq.Task {
	t.Helper()
	body, err := json.Marshal(shared.InvitationNotifyPayload{InvitationID: invitationID, Event: shared.InvitationCreated})
	require.NoError(t, err)
	return asynq.NewTask(shared.TypeInvitationNotify, body)
}

func TestNotifyHandler_SendsEmail(t *testing.T) {
	w := newWorld(true)
	mailer := &recordingMailer{}

	require.NoError(t, w.handler(mailer).ProcessTask(context.Background(), task(t, w.invitation.ID)))

	require.Len(t, mailer.sent, 1)
	sent := mailer.sent[0]
	assert.Equal(t, "ada@example.com", sent.To)
	assert.Equal(t, "Harbor Lights", sent.MovieTitle)
	assert.Equal(t, "offer", sent.Kind)
	assert.Equal(t, "created", sent.Event)
}

func TestNotifyHandler_SkipsUnlinkedActorAndMissingInvitation(t *testing.T) {
	w := newWorld(false)
	mailer := &recordingMailer{}
	h := w.handler(mailer)

	require.NoError(t, h.ProcessTask(context.Background(), task(t, w.invitation.ID)))
	require.NoError(t, h.ProcessTask(context.Background(), task(t, uuid.New())))
	assert.Empty(t, mailer.sent)
}

func TestNotifyHandler_BadPayloadIsNotRetried(t *testing.T) {
	w := newWorld(true)
	err := w.handler(&recordingMailer{}).ProcessTask(context.Background(),
		asynq.NewTask(shared.TypeInvitationNotify, []byte("not json")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}
