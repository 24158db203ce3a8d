package user

import (
	"time"

	"github.com/google/uuid"

	"filmforge-backend/internal/shared"
)

// User is an account that can authenticate against the API.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         shared.Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserDTO is the public representation of a user. The password hash never
// leaves the service layer.
type UserDTO struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      shared.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (u *User) ToDTO() *UserDTO {
	return &UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
