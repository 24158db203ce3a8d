package model

import (
	"time"

	"github.com/google/uuid"
)

// Actor is a performer with the fee they charge per movie.
type Actor struct {
	ID        uuid.UUID
	Name      string
	Bio       string
	Fee       uint64
	UserID    *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether the actor record is linked to userID.
func (a *Actor) OwnedBy(userID uuid.UUID) bool {
	return a.UserID != nil && *a.UserID == userID
}
