package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"filmforge-backend/internal/domains/user"
	"filmforge-backend/internal/shared"
	"filmforge-backend/internal/shared/apperror"
	"filmforge-backend/internal/shared/utils"
	"filmforge-backend/pkg/jwt"
	"filmforge-backend/pkg/password"
)

// TokenIssuer is implemented by *jwt.Manager.
type TokenIssuer interface {
	GenerateAccessToken(userID, email, role string) (string, error)
	GenerateRefreshToken(userID string) (string, error)
	ValidateRefreshToken(token string) (*jwt.Claims, error)
	AccessExpiry() time.Duration
}

type userService struct {
	repo       user.Repository
	tokens     TokenIssuer
	bcryptCost int
	log        zerolog.Logger
	now        func() time.Time
}

func NewUserService(repo user.Repository, tokens TokenIssuer, bcryptCost int, log zerolog.Logger) user.Service {
	if bcryptCost == 0 {
		bcryptCost = password.DefaultCost
	}
	return &userService{
		repo:       repo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		log:        log.With().Str("service", "user").Logger(),
		now:        time.Now,
	}
}

// ========================================
// AUTH
// ========================================

func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("invalid login request", err)
	}

	u, err := s.repo.GetByEmail(ctx, user.NormalizeEmail(req.Email))
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.Compare(u.PasswordHash, req.Password); err != nil {
		if !errors.Is(err, password.ErrMismatch) {
			s.log.Error().Err(err).Str("user_id", u.ID.String()).Msg("stored password hash is unreadable")
		}
		return nil, user.ErrInvalidCredentials
	}

	s.log.Info().Str("user_id", u.ID.String()).Str("role", string(u.Role)).Msg("user logged in")
	return s.issueTokens(u)
}

func (s *userService) RefreshToken(ctx context.Context, req user.RefreshTokenRequest) (*user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("invalid refresh request", err)
	}

	claims, err := s.tokens.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, user.ErrInvalidToken
		}
		return nil, err
	}

	return s.issueTokens(u)
}

func (s *userService) issueTokens(u *user.User) (*user.LoginResponse, error) {
	access, err := s.tokens.GenerateAccessToken(u.ID.String(), u.Email, string(u.Role))
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, apperror.CodeInternal, "failed to issue access token", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, apperror.CodeInternal, "failed to issue refresh token", err)
	}

	return &user.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int(s.tokens.AccessExpiry().Seconds()),
		User:         u.ToDTO(),
	}, nil
}

// ========================================
// CRUD
// ========================================

func (s *userService) Create(ctx context.Context, req user.CreateUserRequest) (*user.UserDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("invalid user", err)
	}

	hash, err := password.HashWithCost(req.Password, s.bcryptCost)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, apperror.CodeInternal, "failed to hash password", err)
	}

	now := s.now()
	u := &user.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        user.NormalizeEmail(req.Email),
		PasswordHash: hash,
		Role:         req.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", u.ID.String()).Str("role", string(u.Role)).Msg("user created")
	return u.ToDTO(), nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*user.UserDTO, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.ToDTO(), nil
}

func (s *userService) List(ctx context.Context, page utils.Pagination) ([]*user.UserDTO, int, error) {
	users, total, err := s.repo.List(ctx, page.Offset(), page.Limit)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]*user.UserDTO, len(users))
	for i, u := range users {
		dtos[i] = u.ToDTO()
	}
	return dtos, total, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, req user.UpdateUserRequest) (*user.UserDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation("invalid user", err)
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Email != nil {
		u.Email = user.NormalizeEmail(*req.Email)
	}
	if req.Role != nil {
		u.Role = shared.Role(*req.Role)
	}
	if req.Password != nil {
		hash, err := password.HashWithCost(*req.Password, s.bcryptCost)
		if err != nil {
			return nil, apperror.Wrap(apperror.KindInternal, apperror.CodeInternal, "failed to hash password", err)
		}
		u.PasswordHash = hash
	}
	u.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u.ToDTO(), nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id.String()).Msg("user deleted")
	return nil
}
