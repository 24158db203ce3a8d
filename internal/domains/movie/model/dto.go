package model

import (
	"errors"
	"math"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"filmforge-backend/internal/domains/budget"
)

// MaxBudget is the largest budget the movies table can store.
const MaxBudget = uint64(math.MaxInt64)

var errNilUUID = errors.New("must be a valid id")

func notNilUUID(value interface{}) error {
	switch v := value.(type) {
	case uuid.UUID:
		if v == uuid.Nil {
			return errNilUUID
		}
	case *uuid.UUID:
		if v != nil && *v == uuid.Nil {
			return errNilUUID
		}
	}
	return nil
}

func releaseNotBefore(start time.Time) validation.RuleFunc {
	return func(value interface{}) error {
		release, _ := value.(time.Time)
		if !start.IsZero() && !release.IsZero() && release.Before(start) {
			return errors.New("must not be before start_date")
		}
		return nil
	}
}

type CreateMovieRequest struct {
	Title       string      `json:"title"`
	Budget      uint64      `json:"budget"`
	StartDate   time.Time   `json:"start_date"`
	ReleaseDate time.Time   `json:"release_date"`
	GenreID     uuid.UUID   `json:"genre_id"`
	DirectorID  uuid.UUID   `json:"director_id"`
	ActorIDs    []uuid.UUID `json:"actor_ids"`
}

func (r CreateMovieRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Budget, validation.Max(MaxBudget)),
		validation.Field(&r.StartDate, validation.Required),
		validation.Field(&r.ReleaseDate, validation.Required, validation.By(releaseNotBefore(r.StartDate))),
		validation.Field(&r.GenreID, validation.By(notNilUUID)),
		validation.Field(&r.DirectorID, validation.By(notNilUUID)),
		validation.Field(&r.ActorIDs, validation.Each(validation.By(notNilUUID))),
	)
}

// UpdateMovieRequest replaces the roster when ActorIDs is present.
type UpdateMovieRequest struct {
	Title       *string      `json:"title,omitempty"`
	Budget      *uint64      `json:"budget,omitempty"`
	StartDate   *time.Time   `json:"start_date,omitempty"`
	ReleaseDate *time.Time   `json:"release_date,omitempty"`
	GenreID     *uuid.UUID   `json:"genre_id,omitempty"`
	DirectorID  *uuid.UUID   `json:"director_id,omitempty"`
	ActorIDs    *[]uuid.UUID `json:"actor_ids,omitempty"`
}

func (r UpdateMovieRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.Budget, validation.Max(MaxBudget)),
		validation.Field(&r.GenreID, validation.By(notNilUUID)),
		validation.Field(&r.DirectorID, validation.By(notNilUUID)),
	)
}

type RosterEntryResponse struct {
	ActorID uuid.UUID `json:"actor_id"`
	Name    string    `json:"name"`
	Fee     uint64    `json:"fee"`
}

type MovieResponse struct {
	ID          uuid.UUID             `json:"id"`
	Title       string                `json:"title"`
	Budget      uint64                `json:"budget"`
	StartDate   time.Time             `json:"start_date"`
	ReleaseDate time.Time             `json:"release_date"`
	GenreID     uuid.UUID             `json:"genre_id"`
	DirectorID  uuid.UUID             `json:"director_id"`
	Actors      []RosterEntryResponse `json:"actors"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

func ToResponse(m *Movie) *MovieResponse {
	actors := make([]RosterEntryResponse, len(m.Roster))
	for i, e := range m.Roster {
		actors[i] = RosterEntryResponse{ActorID: e.ActorID, Name: e.Name, Fee: e.Fee}
	}
	return &MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Budget:      m.Budget,
		StartDate:   m.StartDate,
		ReleaseDate: m.ReleaseDate,
		GenreID:     m.GenreID,
		DirectorID:  m.DirectorID,
		Actors:      actors,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// BudgetResponse is the budget summary of one movie.
type BudgetResponse struct {
	MovieID uuid.UUID `json:"movie_id"`
	Title   string    `json:"title"`
	Actors  int       `json:"actors"`
	budget.Summary
}

func ToBudgetResponse(m *Movie) *BudgetResponse {
	return &BudgetResponse{
		MovieID: m.ID,
		Title:   m.Title,
		Actors:  len(m.Roster),
		Summary: budget.Summarize(m.Budget, m.Fees()),
	}
}
