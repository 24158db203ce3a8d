package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmforge-backend/internal/domains/director/model"
	"filmforge-backend/internal/shared/apperror"
	"filmforge-backend/internal/shared/utils"
)

type memoryDirectors struct {
	directors map[uuid.UUID]*model.Director
}

func (m *memoryDirectors) Create(_ context.Context, d *model.Director) error {
	if d.UserID != nil {
		for _, existing := range m.directors {
			if existing.UserID != nil && *existing.UserID == *d.UserID {
				return model.ErrUserLinked
			}
		}
	}
	cp := *d
	m.directors[d.ID] = &cp
	return nil
}

func (m *memoryDirectors) GetByID(_ context.Context, id uuid.UUID) (*model.Director, error) {
	d, ok := m.directors[id]
	if !ok {
		return nil, model.ErrDirectorNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *memoryDirectors) List(_ context.Context, offset, limit int) ([]*model.Director, int, error) {
	all := make([]*model.Director, 0, len(m.directors))
	for _, d := range m.directors {
		all = append(all, d)
	}
	if offset >= len(all) {
		return nil, len(all), nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], len(all), nil
}

func (m *memoryDirectors) Update(_ context.Context, d *model.Director) error {
	if _, ok := m.directors[d.ID]; !ok {
		return model.ErrDirectorNotFound
	}
	cp := *d
	m.directors[d.ID] = &cp
	return nil
}

func (m *memoryDirectors) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.directors[id]; !ok {
		return model.ErrDirectorNotFound
	}
	delete(m.directors, id)
	return nil
}

func newService() (*directorService, *memoryDirectors) {
	repo := &memoryDirectors{directors: map[uuid.UUID]*model.Director{}}
	svc := NewDirectorService(repo, zerolog.Nop()).(*directorService)
	svc.now = func() time.Time { return time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("links a user once", func(t *testing.T) {
		svc, _ := newService()

		d, err := svc.Create(ctx, model.CreateDirectorRequest{Name: "Maren Holt", UserID: &userID})
		require.NoError(t, err)
		assert.Equal(t, &userID, d.UserID)

		_, err = svc.Create(ctx, model.CreateDirectorRequest{Name: "Someone Else", UserID: &userID})
		assert.ErrorIs(t, err, model.ErrUserLinked)
	})

	t.Run("name required", func(t *testing.T) {
		svc, repo := newService()

		_, err := svc.Create(ctx, model.CreateDirectorRequest{Bio: "no name"})

		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		assert.Empty(t, repo.directors)
	})
}

func TestUpdate_OnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()
	d, err := svc.Create(ctx, model.CreateDirectorRequest{Name: "Idris Calloway", Bio: "Documentaries."})
	require.NoError(t, err)

	bio := "Documentaries and thrillers."
	got, err := svc.Update(ctx, d.ID, model.UpdateDirectorRequest{Bio: &bio})

	require.NoError(t, err)
	assert.Equal(t, "Idris Calloway", got.Name)
	assert.Equal(t, bio, got.Bio)

	_, err = svc.Update(ctx, uuid.New(), model.UpdateDirectorRequest{Bio: &bio})
	assert.ErrorIs(t, err, model.ErrDirectorNotFound)
}

func TestList_Paginates(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()
	for _, name := range []string{"Ada Park", "Ben Ortiz", "Cora Wynn"} {
		_, err := svc.Create(ctx, model.CreateDirectorRequest{Name: name})
		require.NoError(t, err)
	}

	page, total, err := svc.List(ctx, utils.Pagination{Page: 2, Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, page, 1)
}
