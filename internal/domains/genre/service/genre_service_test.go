package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmforge-backend/internal/domains/genre"
	"filmforge-backend/internal/shared/apperror"
)

type memoryGenres struct {
	genres map[uuid.UUID]*genre.Genre
}

func (m *memoryGenres) Create(_ context.Context, g *genre.Genre) error {
	for _, existing := range m.genres {
		if existing.Name == g.Name {
			return genre.ErrGenreAlreadyExists
		}
	}
	cp := *g
	m.genres[g.ID] = &cp
	return nil
}

func (m *memoryGenres) GetByID(_ context.Context, id uuid.UUID) (*genre.Genre, error) {
	g, ok := m.genres[id]
	if !ok {
		return nil, genre.ErrGenreNotFound
	}
	cp := *g
	return &cp, nil
}

func (m *memoryGenres) List(context.Context) ([]*genre.Genre, error) {
	out := make([]*genre.Genre, 0, len(m.genres))
	for _, g := range m.genres {
		out = append(out, g)
	}
	return out, nil
}

func (m *memoryGenres) Update(_ context.Context, g *genre.Genre) error {
	if _, ok := m.genres[g.ID]; !ok {
		return genre.ErrGenreNotFound
	}
	cp := *g
	m.genres[g.ID] = &cp
	return nil
}

func (m *memoryGenres) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.genres[id]; !ok {
		return genre.ErrGenreNotFound
	}
	delete(m.genres, id)
	return nil
}

func TestGenreService(t *testing.T) {
	ctx := context.Background()
	repo := &memoryGenres{genres: map[uuid.UUID]*genre.Genre{}}
	svc := NewGenreService(repo, zerolog.Nop())

	created, err := svc.Create(ctx, genre.GenreRequest{Name: "  Western "})
	require.NoError(t, err)
	assert.Equal(t, "Western", created.Name)

	_, err = svc.Create(ctx, genre.GenreRequest{Name: "Western"})
	assert.ErrorIs(t, err, genre.ErrGenreAlreadyExists)

	_, err = svc.Create(ctx, genre.GenreRequest{Name: " "})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	updated, err := svc.Update(ctx, created.ID, genre.GenreRequest{Name: "Space Western"})
	require.NoError(t, err)
	assert.Equal(t, "Space Western", updated.Name)

	_, err = svc.Update(ctx, uuid.New(), genre.GenreRequest{Name: "Noir"})
	assert.ErrorIs(t, err, genre.ErrGenreNotFound)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, genre.ErrGenreNotFound)
}
