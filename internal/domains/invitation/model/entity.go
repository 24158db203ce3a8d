package model

import (
	"time"

	"github.com/google/uuid"
)

// Kind distinguishes an initial offer from the confirmation that follows it.
type Kind string

const (
	KindOffer        Kind = "offer"
	KindConfirmation Kind = "confirmation"
)

func (k Kind) Valid() bool {
	return k == KindOffer || k == KindConfirmation
}

// Invitation proposes an actor for a movie. Once accepted the actor joins
// the movie's roster.
type Invitation struct {
	ID          uuid.UUID
	HasAccepted bool
	Kind        Kind
	MovieID     uuid.UUID
	ActorID     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
