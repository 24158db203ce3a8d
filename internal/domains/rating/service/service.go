package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	moviemodel "filmforge-backend/internal/domains/movie/model"
	"filmforge-backend/internal/domains/rating/model"
	"filmforge-backend/internal/domains/rating/repository"
	"filmforge-backend/internal/shared/apperror"
	"filmforge-backend/internal/shared/utils"
)

type ServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, req model.CreateRatingRequest) (*model.RatingResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.RatingResponse, error)
	List(ctx context.Context, filter model.ListFilter, page utils.Pagination) ([]*model.RatingResponse, int, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateRatingRequest) (*model.RatingResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type MovieLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*moviemodel.Movie, error)
}

type ratingService struct {
	repo   repository.RatingRepository
	movies MovieLookup
	log    zerolog.Logger
	now    func() time.Time
}

func NewRatingService(repo repository.RatingRepository, movies MovieLookup, log zerolog.Logger) ServiceInterface {
	return &ratingService{
		repo:   repo,
		movies: movies,
		log:    log.With().Str("service", "rating").Logger(),
		now:    time.Now,
	}
}

func (s *ratingService) Create(ctx context.Context, userID uuid.UUID, req model.CreateRatingRequest) (*model.RatingResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("invalid rating", err)
	}
	if _, err := s.movies.GetByID(ctx, req.MovieID); err != nil {
		return nil, err
	}

	now := s.now()
	r := &model.Rating{
		ID:        uuid.New(),
		Value:     req.Value,
		MovieID:   req.MovieID,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return model.ToResponse(r), nil
}

func (s *ratingService) GetByID(ctx context.Context, id uuid.UUID) (*model.RatingResponse, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return model.ToResponse(r), nil
}

func (s *ratingService) List(ctx context.Context, filter model.ListFilter, page utils.Pagination) ([]*model.RatingResponse, int, error) {
	ratings, total, err := s.repo.List(ctx, filter, page.Offset(), page.Limit)
	if err != nil {
		return nil, 0, err
	}

	out := make([]*model.RatingResponse, len(ratings))
	for i, r := range ratings {
		out[i] = model.ToResponse(r)
	}
	return out, total, nil
}

func (s *ratingService) Update(ctx context.Context, id uuid.UUID, req model.UpdateRatingRequest) (*model.RatingResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("invalid rating", err)
	}

	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.Value = req.Value
	r.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return model.ToResponse(r), nil
}

func (s *ratingService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
