package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	actormodel "filmforge-backend/internal/domains/actor/model"
	directormodel "filmforge-backend/internal/domains/director/model"
	"filmforge-backend/internal/domains/genre"
	moviemodel "filmforge-backend/internal/domains/movie/model"
	"filmforge-backend/internal/domains/user"
	"filmforge-backend/internal/shared"
)

const sampleBudget uint64 = 5678165

type UserStore interface {
	Create(ctx context.Context, req user.CreateUserRequest) (*user.UserDTO, error)
}

type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

type GenreStore interface {
	List(ctx context.Context) ([]*genre.GenreResponse, error)
	Create(ctx context.Context, req genre.GenreRequest) (*genre.GenreResponse, error)
}

type DirectorStore interface {
	Create(ctx context.Context, req directormodel.CreateDirectorRequest) (*directormodel.DirectorResponse, error)
}

type ActorStore interface {
	Create(ctx context.Context, req actormodel.CreateActorRequest) (*actormodel.ActorResponse, error)
}

type MovieStore interface {
	Create(ctx context.Context, req moviemodel.CreateMovieRequest) (*moviemodel.MovieResponse, error)
}

// Seeder fills an empty database with development data through the
// services, so every row passes the same validation as API writes.
type Seeder struct {
	Users     UserStore
	Finder    UserFinder
	Genres    GenreStore
	Directors DirectorStore
	Actors    ActorStore
	Movies    MovieStore
	Password  string
	Log       zerolog.Logger
	Now       func() time.Time
}

type person struct {
	name  string
	email string
	fee   uint64
}

var (
	adminAccount = person{name: "Studio Admin", email: "admin@filmforge.dev"}

	seedDirectors = []person{
		{name: "Maren Holt", email: "maren.holt@filmforge.dev"},
		{name: "Idris Calloway", email: "idris.calloway@filmforge.dev"},
	}

	seedActors = []person{
		{name: "Lena Varga", email: "lena.varga@filmforge.dev", fee: 1_250_000},
		{name: "Tomas Reyes", email: "tomas.reyes@filmforge.dev", fee: 1_900_000},
		{name: "Priya Nair", email: "priya.nair@filmforge.dev", fee: 2_100_000},
		{name: "Oskar Lind", email: "oskar.lind@filmforge.dev", fee: 950_000},
	}

	// actor indexes per movie; each roster stays under sampleBudget
	seedMovies = []struct {
		title    string
		genre    int
		director int
		actors   []int
		startIn  time.Duration
		runsFor  time.Duration
	}{
		{"Shadows of the Forgotten", 0, 0, []int{0, 1}, -400 * 24 * time.Hour, 120 * 24 * time.Hour},
		{"Echoes in the Mist", 3, 0, []int{2, 3}, -30 * 24 * time.Hour, 200 * 24 * time.Hour},
		{"The Last Horizon", 7, 1, []int{0, 3}, 90 * 24 * time.Hour, 180 * 24 * time.Hour},
	}
)

// ErrAlreadySeeded is returned when the administrator account exists.
var ErrAlreadySeeded = errors.New("database already seeded")

func (s *Seeder) Run(ctx context.Context) error {
	if _, err := s.Finder.GetByEmail(ctx, adminAccount.email); err == nil {
		return ErrAlreadySeeded
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return fmt.Errorf("check existing admin: %w", err)
	}

	genreIDs, err := s.seedGenres(ctx)
	if err != nil {
		return err
	}

	if _, err := s.createUser(ctx, adminAccount, shared.RoleSuperAdministrator); err != nil {
		return err
	}

	directorIDs := make([]uuid.UUID, 0, len(seedDirectors))
	for _, p := range seedDirectors {
		u, err := s.createUser(ctx, p, shared.RoleDirector)
		if err != nil {
			return err
		}
		d, err := s.Directors.Create(ctx, directormodel.CreateDirectorRequest{Name: p.name, UserID: &u.ID})
		if err != nil {
			return fmt.Errorf("create director %s: %w", p.name, err)
		}
		directorIDs = append(directorIDs, d.ID)
	}

	actorIDs := make([]uuid.UUID, 0, len(seedActors))
	for _, p := range seedActors {
		u, err := s.createUser(ctx, p, shared.RoleActor)
		if err != nil {
			return err
		}
		a, err := s.Actors.Create(ctx, actormodel.CreateActorRequest{Name: p.name, Fee: p.fee, UserID: &u.ID})
		if err != nil {
			return fmt.Errorf("create actor %s: %w", p.name, err)
		}
		actorIDs = append(actorIDs, a.ID)
	}

	now := s.Now().UTC().Truncate(24 * time.Hour)
	for _, sm := range seedMovies {
		roster := make([]uuid.UUID, 0, len(sm.actors))
		for _, i := range sm.actors {
			roster = append(roster, actorIDs[i])
		}
		start := now.Add(sm.startIn)

		m, err := s.Movies.Create(ctx, moviemodel.CreateMovieRequest{
			Title:       sm.title,
			Budget:      sampleBudget,
			StartDate:   start,
			ReleaseDate: start.Add(sm.runsFor),
			GenreID:     genreIDs[genre.DefaultNames[sm.genre]],
			DirectorID:  directorIDs[sm.director],
			ActorIDs:    roster,
		})
		if err != nil {
			return fmt.Errorf("create movie %q: %w", sm.title, err)
		}
		s.Log.Info().Str("movie_id", m.ID.String()).Str("title", m.Title).Msg("seeded movie")
	}

	return nil
}

// seedGenres creates the missing standard genres and returns every genre
// id by name.
func (s *Seeder) seedGenres(ctx context.Context) (map[string]uuid.UUID, error) {
	existing, err := s.Genres.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}

	ids := make(map[string]uuid.UUID, len(genre.DefaultNames))
	for _, g := range existing {
		ids[g.Name] = g.ID
	}

	created := 0
	for _, name := range genre.DefaultNames {
		if _, ok := ids[name]; ok {
			continue
		}
		g, err := s.Genres.Create(ctx, genre.GenreRequest{Name: name})
		if err != nil {
			return nil, fmt.Errorf("create genre %s: %w", name, err)
		}
		ids[name] = g.ID
		created++
	}

	s.Log.Info().Int("created", created).Int("total", len(ids)).Msg("seeded genres")
	return ids, nil
}

func (s *Seeder) createUser(ctx context.Context, p person, role shared.Role) (*user.UserDTO, error) {
	u, err := s.Users.Create(ctx, user.CreateUserRequest{
		Name:     p.name,
		Email:    p.email,
		Password: s.Password,
		Role:     role,
	})
	if err != nil {
		return nil, fmt.Errorf("create user %s: %w", p.email, err)
	}
	s.Log.Info().Str("email", u.Email).Str("role", string(role)).Msg("seeded user")
	return u, nil
}
