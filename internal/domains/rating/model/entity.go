package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Rating is a user's 1 to 5 score for a movie. A user rates a movie once.
type Rating struct {
	ID        uuid.UUID
	Value     int
	MovieID   uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ListFilter struct {
	MovieID *uuid.UUID
}
