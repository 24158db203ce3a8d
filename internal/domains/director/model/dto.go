package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreateDirectorRequest struct {
	Name   string     `json:"name"`
	Bio    string     `json:"bio"`
	UserID *uuid.UUID `json:"user_id,omitempty"`
}

func (r CreateDirectorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 255)),
		validation.Field(&r.Bio, validation.Length(0, 5000)),
	)
}

type UpdateDirectorRequest struct {
	Name   *string    `json:"name,omitempty"`
	Bio    *string    `json:"bio,omitempty"`
	UserID *uuid.UUID `json:"user_id,omitempty"`
}

func (r UpdateDirectorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(2, 255)),
		validation.Field(&r.Bio, validation.Length(0, 5000)),
	)
}

type DirectorResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Bio       string     `json:"bio"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func ToResponse(d *Director) *DirectorResponse {
	return &DirectorResponse{
		ID:        d.ID,
		Name:      d.Name,
		Bio:       d.Bio,
		UserID:    d.UserID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
