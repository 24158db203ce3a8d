package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreateRatingRequest struct {
	MovieID uuid.UUID `json:"movie_id"`
	Value   int       `json:"value"`
}

func (r CreateRatingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.MovieID, validation.By(func(v interface{}) error {
			if id, _ := v.(uuid.UUID); id == uuid.Nil {
				return errors.New("is required")
			}
			return nil
		})),
		validation.Field(&r.Value, validation.Required, validation.Min(MinRating), validation.Max(MaxRating)),
	)
}

type UpdateRatingRequest struct {
	Value int `json:"value"`
}

func (r UpdateRatingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Value, validation.Required, validation.Min(MinRating), validation.Max(MaxRating)),
	)
}

type RatingResponse struct {
	ID        uuid.UUID `json:"id"`
	Value     int       `json:"value"`
	MovieID   uuid.UUID `json:"movie_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToResponse(r *Rating) *RatingResponse {
	return &RatingResponse{
		ID:        r.ID,
		Value:     r.Value,
		MovieID:   r.MovieID,
		UserID:    r.UserID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
