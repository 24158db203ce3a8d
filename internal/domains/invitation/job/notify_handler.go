package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	actormodel "filmforge-backend/internal/domains/actor/model"
	"filmforge-backend/internal/domains/invitation/model"
	moviemodel "filmforge-backend/internal/domains/movie/model"
	"filmforge-backend/internal/domains/user"
	"filmforge-backend/internal/infrastructure/email"
	"filmforge-backend/internal/shared"
)

type InvitationReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Invitation, error)
}

type ActorReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*actormodel.Actor, error)
}

type MovieReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*moviemodel.Movie, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// NotifyHandler e-mails the invited actor's user account.
type NotifyHandler struct {
	invitations InvitationReader
	actors      ActorReader
	movies      MovieReader
	users       UserReader
	mailer      email.EmailService
	log         zerolog.Logger
}

func NewNotifyHandler(
	invitations InvitationReader,
	actors ActorReader,
	movies MovieReader,
	users UserReader,
	mailer email.EmailService,
	log zerolog.Logger,
) *NotifyHandler {
	return &NotifyHandler{
		invitations: invitations,
		actors:      actors,
		movies:      movies,
		users:       users,
		mailer:      mailer,
		log:         log.With().Str("task", shared.TypeInvitationNotify).Logger(),
	}
}

func (h *NotifyHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var p shared.InvitationNotifyPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		h.log.Error().Err(err).Msg("failed to unmarshal payload")
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	inv, err := h.invitations.GetByID(ctx, p.InvitationID)
	if errors.Is(err, model.ErrInvitationNotFound) {
		h.log.Info().Str("invitation_id", p.InvitationID.String()).Msg("invitation gone, nothing to send")
		return nil
	}
	if err != nil {
		return fmt.Errorf("load invitation: %w", err)
	}

	actor, err := h.actors.GetByID(ctx, inv.ActorID)
	if err != nil {
		return fmt.Errorf("load actor: %w", err)
	}
	if actor.UserID == nil {
		h.log.Info().Str("actor_id", actor.ID.String()).Msg("actor has no user account, skipping email")
		return nil
	}

	u, err := h.users.GetByID(ctx, *actor.UserID)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}

	movie, err := h.movies.GetByID(ctx, inv.MovieID)
	if err != nil {
		return fmt.Errorf("load movie: %w", err)
	}

	err = h.mailer.SendInvitationEmail(ctx, email.InvitationEmailData{
		To:          u.Email,
		ActorName:   actor.Name,
		MovieTitle:  movie.Title,
		Kind:        string(inv.Kind),
		Event:       string(p.Event),
		HasAccepted: inv.HasAccepted,
		StartDate:   movie.StartDate,
		ReleaseDate: movie.ReleaseDate,
	})
	if err != nil {
		return fmt.Errorf("send invitation email: %w", err)
	}

	h.log.Info().
		Str("invitation_id", inv.ID.String()).
		Str("to", u.Email).
		Str("event", string(p.Event)).
		Msg("invitation email sent")
	return nil
}
