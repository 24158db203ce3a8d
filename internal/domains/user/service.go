package user

import (
	"context"

	"github.com/google/uuid"

	"filmforge-backend/internal/shared/utils"
)

// Service is the user business logic contract.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (*LoginResponse, error)

	Create(ctx context.Context, req CreateUserRequest) (*UserDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserDTO, error)
	List(ctx context.Context, page utils.Pagination) ([]*UserDTO, int, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*UserDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
