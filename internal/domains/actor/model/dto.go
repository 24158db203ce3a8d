package model

import (
	"math"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// MaxFee is the largest fee the actors table can store.
const MaxFee = uint64(math.MaxInt64)

type CreateActorRequest struct {
	Name   string     `json:"name"`
	Bio    string     `json:"bio"`
	Fee    uint64     `json:"fee"`
	UserID *uuid.UUID `json:"user_id,omitempty"`
}

func (r CreateActorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 255)),
		validation.Field(&r.Bio, validation.Length(0, 5000)),
		validation.Field(&r.Fee, validation.Max(MaxFee)),
	)
}

type UpdateActorRequest struct {
	Name   *string    `json:"name,omitempty"`
	Bio    *string    `json:"bio,omitempty"`
	Fee    *uint64    `json:"fee,omitempty"`
	UserID *uuid.UUID `json:"user_id,omitempty"`
}

func (r UpdateActorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(2, 255)),
		validation.Field(&r.Bio, validation.Length(0, 5000)),
		validation.Field(&r.Fee, validation.Max(MaxFee)),
	)
}

type ActorResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Bio       string     `json:"bio"`
	Fee       uint64     `json:"fee"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func ToResponse(a *Actor) *ActorResponse {
	return &ActorResponse{
		ID:        a.ID,
		Name:      a.Name,
		Bio:       a.Bio,
		Fee:       a.Fee,
		UserID:    a.UserID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
