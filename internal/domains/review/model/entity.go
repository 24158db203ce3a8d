package model

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user's written opinion of a movie.
type Review struct {
	ID        uuid.UUID
	Title     string
	Content   string
	MovieID   uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ListFilter struct {
	MovieID *uuid.UUID
	UserID  *uuid.UUID
}
