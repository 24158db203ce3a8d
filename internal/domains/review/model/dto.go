package model

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// =====================================================
// REQUEST DTOs
// =====================================================

type CreateReviewRequest struct {
	MovieID uuid.UUID `json:"movie_id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
}

func (r *CreateReviewRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.MovieID, validation.By(func(v interface{}) error {
			if id, _ := v.(uuid.UUID); id == uuid.Nil {
				return errors.New("is required")
			}
			return nil
		})),
		validation.Field(&r.Title, validation.Required, validation.Length(MinTitleLength, MaxTitleLength)),
		validation.Field(&r.Content, validation.Required, validation.Length(MinContentLength, MaxContentLength)),
	)
}

type UpdateReviewRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

func (r UpdateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(MinTitleLength, MaxTitleLength)),
		validation.Field(&r.Content, validation.NilOrNotEmpty, validation.Length(MinContentLength, MaxContentLength)),
	)
}

// =====================================================
// RESPONSE DTOs
// =====================================================

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	MovieID   uuid.UUID `json:"movie_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToResponse(r *Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		MovieID:   r.MovieID,
		UserID:    r.UserID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
