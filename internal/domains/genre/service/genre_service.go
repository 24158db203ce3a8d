package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"filmforge-backend/internal/domains/genre"
	"filmforge-backend/internal/shared/apperror"
)

type genreService struct {
	repo genre.Repository
	log  zerolog.Logger
	now  func() time.Time
}

func NewGenreService(repo genre.Repository, log zerolog.Logger) genre.Service {
	return &genreService{
		repo: repo,
		log:  log.With().Str("service", "genre").Logger(),
		now:  time.Now,
	}
}

func (s *genreService) Create(ctx context.Context, req genre.GenreRequest) (*genre.GenreResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("invalid genre", err)
	}

	now := s.now()
	g := &genre.Genre{ID: uuid.New(), Name: req.Name, CreatedAt: now, UpdatedAt: now}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}

	s.log.Info().Str("genre_id", g.ID.String()).Str("name", g.Name).Msg("genre created")
	return genre.ToResponse(g), nil
}

func (s *genreService) GetByID(ctx context.Context, id uuid.UUID) (*genre.GenreResponse, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return genre.ToResponse(g), nil
}

func (s *genreService) List(ctx context.Context) ([]*genre.GenreResponse, error) {
	genres, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*genre.GenreResponse, len(genres))
	for i, g := range genres {
		out[i] = genre.ToResponse(g)
	}
	return out, nil
}

func (s *genreService) Update(ctx context.Context, id uuid.UUID, req genre.GenreRequest) (*genre.GenreResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("invalid genre", err)
	}

	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	g.Name = req.Name
	g.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return genre.ToResponse(g), nil
}

func (s *genreService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
