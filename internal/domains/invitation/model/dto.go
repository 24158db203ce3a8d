package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// InvitationRequest is the body of both create and update: an update
// replaces every field.
type InvitationRequest struct {
	MovieID     uuid.UUID `json:"movie_id"`
	ActorID     uuid.UUID `json:"actor_id"`
	Kind        Kind      `json:"kind"`
	HasAccepted bool      `json:"has_accepted"`
}

func requiredID(value interface{}) error {
	if id, _ := value.(uuid.UUID); id == uuid.Nil {
		return errors.New("is required")
	}
	return nil
}

func (r InvitationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.MovieID, validation.By(requiredID)),
		validation.Field(&r.ActorID, validation.By(requiredID)),
		validation.Field(&r.Kind, validation.Required, validation.In(KindOffer, KindConfirmation)),
	)
}

type InvitationResponse struct {
	ID          uuid.UUID `json:"id"`
	HasAccepted bool      `json:"has_accepted"`
	Kind        Kind      `json:"kind"`
	MovieID     uuid.UUID `json:"movie_id"`
	ActorID     uuid.UUID `json:"actor_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToResponse(inv *Invitation) *InvitationResponse {
	return &InvitationResponse{
		ID:          inv.ID,
		HasAccepted: inv.HasAccepted,
		Kind:        inv.Kind,
		MovieID:     inv.MovieID,
		ActorID:     inv.ActorID,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}

func ToResponses(invs []*Invitation) []*InvitationResponse {
	out := make([]*InvitationResponse, len(invs))
	for i, inv := range invs {
		out[i] = ToResponse(inv)
	}
	return out
}
