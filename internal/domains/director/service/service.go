package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"filmforge-backend/internal/domains/director/model"
	"filmforge-backend/internal/domains/director/repository"
	"filmforge-backend/internal/shared/apperror"
	"filmforge-backend/internal/shared/utils"
)

type ServiceInterface interface {
	Create(ctx context.Context, req model.CreateDirectorRequest) (*model.DirectorResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.DirectorResponse, error)
	List(ctx context.Context, page utils.Pagination) ([]*model.DirectorResponse, int, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateDirectorRequest) (*model.DirectorResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type directorService struct {
	repo repository.DirectorRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewDirectorService(repo repository.DirectorRepository, log zerolog.Logger) ServiceInterface {
	return &directorService{
		repo: repo,
		log:  log.With().Str("service", "director").Logger(),
		now:  time.Now,
	}
}

func (s *directorService) Create(ctx context.Context, req model.CreateDirectorRequest) (*model.DirectorResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("invalid director", err)
	}

	now := s.now()
	d := &model.Director{
		ID:        uuid.New(),
		Name:      req.Name,
		Bio:       req.Bio,
		UserID:    req.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	s.log.Info().Str("director_id", d.ID.String()).Msg("director created")
	return model.ToResponse(d), nil
}

func (s *directorService) GetByID(ctx context.Context, id uuid.UUID) (*model.DirectorResponse, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return model.ToResponse(d), nil
}

func (s *directorService) List(ctx context.Context, page utils.Pagination) ([]*model.DirectorResponse, int, error) {
	directors, total, err := s.repo.List(ctx, page.Offset(), page.Limit)
	if err != nil {
		return nil, 0, err
	}

	out := make([]*model.DirectorResponse, len(directors))
	for i, d := range directors {
		out[i] = model.ToResponse(d)
	}
	return out, total, nil
}

func (s *directorService) Update(ctx context.Context, id uuid.UUID, req model.UpdateDirectorRequest) (*model.DirectorResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("invalid director", err)
	}

	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Bio != nil {
		d.Bio = *req.Bio
	}
	if req.UserID != nil {
		d.UserID = req.UserID
	}
	d.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return model.ToResponse(d), nil
}

func (s *directorService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
