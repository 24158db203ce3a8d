package model

import (
	"time"

	"github.com/google/uuid"
)

// Movie is the aggregate the budget rules operate on: the movie row plus
// its roster of actors and their current fees.
type Movie struct {
	ID          uuid.UUID
	Title       string
	Budget      uint64
	StartDate   time.Time
	ReleaseDate time.Time
	GenreID     uuid.UUID
	DirectorID  uuid.UUID
	Roster      []RosterEntry
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RosterEntry is one actor on a movie with the fee they currently charge.
type RosterEntry struct {
	ActorID uuid.UUID
	Name    string
	Fee     uint64
}

// Fees returns the fees of the current roster.
func (m *Movie) Fees() []uint64 {
	fees := make([]uint64, len(m.Roster))
	for i, e := range m.Roster {
		fees[i] = e.Fee
	}
	return fees
}

// FeesWith returns the roster fees as they would be if actorID charged fee:
// the actor's entry is replaced when already rostered, appended otherwise.
func (m *Movie) FeesWith(actorID uuid.UUID, fee uint64) []uint64 {
	fees := make([]uint64, 0, len(m.Roster)+1)
	replaced := false
	for _, e := range m.Roster {
		if e.ActorID == actorID {
			fees = append(fees, fee)
			replaced = true
			continue
		}
		fees = append(fees, e.Fee)
	}
	if !replaced {
		fees = append(fees, fee)
	}
	return fees
}

func (m *Movie) HasActor(actorID uuid.UUID) bool {
	for _, e := range m.Roster {
		if e.ActorID == actorID {
			return true
		}
	}
	return false
}

// InProduction reports whether t falls in [StartDate, ReleaseDate].
func (m *Movie) InProduction(t time.Time) bool {
	return !t.Before(m.StartDate) && !t.After(m.ReleaseDate)
}

// ActorIDs returns the ids of the rostered actors.
func (m *Movie) ActorIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(m.Roster))
	for i, e := range m.Roster {
		ids[i] = e.ActorID
	}
	return ids
}

// LockKey names the lock guarding a movie's roster.
func LockKey(movieID uuid.UUID) string {
	return "movie:" + movieID.String()
}

// ListFilter narrows movie listings.
type ListFilter struct {
	DirectorID *uuid.UUID
	GenreID    *uuid.UUID
}
