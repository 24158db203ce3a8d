package main

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	actormodel "filmforge-backend/internal/domains/actor/model"
	directormodel "filmforge-backend/internal/domains/director/model"
	"filmforge-backend/internal/domains/genre"
	moviemodel "filmforge-backend/internal/domains/movie/model"
	"filmforge-backend/internal/domains/user"
	"filmforge-backend/internal/shared"
)

type memoryStores struct {
	users     []user.CreateUserRequest
	genres    []*genre.GenreResponse
	directors []directormodel.CreateDirectorRequest
	actors    map[uuid.UUID]actormodel.CreateActorRequest
	movies    []moviemodel.CreateMovieRequest
	admin     bool
}

func (m *memoryStores) Create(ctx context.Context, req user.CreateUserRequest) (*user.UserDTO, error) {
	m.users = append(m.users, req)
	return &user.UserDTO{ID: uuid.New(), Email: req.Email, Role: req.Role}, nil
}

func (m *memoryStores) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.admin && email == adminAccount.email {
		return &user.User{ID: uuid.New(), Email: email}, nil
	}
	return nil, user.ErrUserNotFound
}

type genreStore struct{ m *memoryStores }

func (g genreStore) List(ctx context.Context) ([]*genre.GenreResponse, error) {
	return g.m.genres, nil
}

func (g genreStore) Create(ctx context.Context, req genre.GenreRequest) (*genre.GenreResponse, error) {
	resp := &genre.GenreResponse{ID: uuid.New(), Name: req.Name}
	g.m.genres = append(g.m.genres, resp)
	return resp, nil
}

type directorStore struct{ m *memoryStores }

func (d directorStore) Create(ctx context.Context, req directormodel.CreateDirectorRequest) (*directormodel.DirectorResponse, error) {
	d.m.directors = append(d.m.directors, req)
	return &directormodel.DirectorResponse{ID: uuid.New(), Name: req.Name, UserID: req.UserID}, nil
}

type actorStore struct{ m *memoryStores }

func (a actorStore) Create(ctx context.Context, req actormodel.CreateActorRequest) (*actormodel.ActorResponse, error) {
	id := uuid.New()
	a.m.actors[id] = req
	return &actormodel.ActorResponse{ID: id, Name: req.Name}, nil
}

type movieStore struct{ m *memoryStores }

func (s movieStore) Create(ctx context.Context, req moviemodel.CreateMovieRequest) (*moviemodel.MovieResponse, error) {
	s.m.movies = append(s.m.movies, req)
	return &moviemodel.MovieResponse{ID: uuid.New(), Title: req.Title}, nil
}

func newTestSeeder(m *memoryStores) *Seeder {
	return &Seeder{
		Users:     m,
		Finder:    m,
		Genres:    genreStore{m},
		Directors: directorStore{m},
		Actors:    actorStore{m},
		Movies:    movieStore{m},
		Password:  "password123",
		Log:       zerolog.Nop(),
		Now:       func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestSeeder_Run(t *testing.T) {
	m := &memoryStores{
		genres: []*genre.GenreResponse{{ID: uuid.New(), Name: "Action"}},
		actors: map[uuid.UUID]actormodel.CreateActorRequest{},
	}

	require.NoError(t, newTestSeeder(m).Run(context.Background()))

	assert.Len(t, m.genres, len(genre.DefaultNames), "existing genres are not duplicated")
	assert.Len(t, m.users, 1+len(seedDirectors)+len(seedActors))
	assert.Equal(t, shared.RoleSuperAdministrator, m.users[0].Role)
	assert.Len(t, m.directors, len(seedDirectors))
	assert.Len(t, m.movies, len(seedMovies))

	for _, d := range m.directors {
		assert.NotNil(t, d.UserID)
	}

	for _, mv := range m.movies {
		assert.Equal(t, sampleBudget, mv.Budget)
		assert.False(t, mv.ReleaseDate.Before(mv.StartDate))

		var fees uint64
		for _, id := range mv.ActorIDs {
			req, ok := m.actors[id]
			require.True(t, ok)
			fees += req.Fee
		}
		assert.LessOrEqual(t, fees, mv.Budget, mv.Title)
	}
}

func TestSeeder_RunTwice(t *testing.T) {
	m := &memoryStores{admin: true, actors: map[uuid.UUID]actormodel.CreateActorRequest{}}

	err := newTestSeeder(m).Run(context.Background())

	assert.ErrorIs(t, err, ErrAlreadySeeded)
	assert.Empty(t, m.users)
	assert.Empty(t, m.genres)
}
