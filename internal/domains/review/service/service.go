package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	moviemodel "filmforge-backend/internal/domains/movie/model"
	"filmforge-backend/internal/domains/review/model"
	"filmforge-backend/internal/domains/review/repository"
	"filmforge-backend/internal/shared/apperror"
	"filmforge-backend/internal/shared/utils"
)

// =====================================================
// REVIEW SERVICE
// =====================================================

type ServiceInterface interface {
	// Create stores a review written by userID.
	Create(ctx context.Context, userID uuid.UUID, req model.CreateReviewRequest) (*model.ReviewResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.ReviewResponse, error)
	List(ctx context.Context, filter model.ListFilter, page utils.Pagination) ([]*model.ReviewResponse, int, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateReviewRequest) (*model.ReviewResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type MovieLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*moviemodel.Movie, error)
}

type reviewService struct {
	repo   repository.ReviewRepository
	movies MovieLookup
	log    zerolog.Logger
	now    func() time.Time
}

func NewReviewService(repo repository.ReviewRepository, movies MovieLookup, log zerolog.Logger) ServiceInterface {
	return &reviewService{
		repo:   repo,
		movies: movies,
		log:    log.With().Str("service", "review").Logger(),
		now:    time.Now,
	}
}

func (s *reviewService) Create(ctx context.Context, userID uuid.UUID, req model.CreateReviewRequest) (*model.ReviewResponse, error) {
	// Step 1: Normalize and validate
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("invalid review", err)
	}

	// Step 2: The movie must exist
	if _, err := s.movies.GetByID(ctx, req.MovieID); err != nil {
		return nil, err
	}

	// Step 3: Persist
	now := s.now()
	r := &model.Review{
		ID:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		MovieID:   req.MovieID,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("review_id", r.ID.String()).
		Str("movie_id", r.MovieID.String()).
		Str("user_id", userID.String()).
		Msg("review created")
	return model.ToResponse(r), nil
}

func (s *reviewService) GetByID(ctx context.Context, id uuid.UUID) (*model.ReviewResponse, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return model.ToResponse(r), nil
}

func (s *reviewService) List(ctx context.Context, filter model.ListFilter, page utils.Pagination) ([]*model.ReviewResponse, int, error) {
	reviews, total, err := s.repo.List(ctx, filter, page.Offset(), page.Limit)
	if err != nil {
		return nil, 0, err
	}

	out := make([]*model.ReviewResponse, len(reviews))
	for i, r := range reviews {
		out[i] = model.ToResponse(r)
	}
	return out, total, nil
}

func (s *reviewService) Update(ctx context.Context, id uuid.UUID, req model.UpdateReviewRequest) (*model.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("invalid review", err)
	}

	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		r.Title = *req.Title
	}
	if req.Content != nil {
		r.Content = *req.Content
	}
	r.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return model.ToResponse(r), nil
}

func (s *reviewService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
