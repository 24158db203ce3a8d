package user

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"filmforge-backend/internal/shared"
)

var roleRule = validation.In(
	shared.RoleSuperAdministrator,
	shared.RoleDirector,
	shared.RoleActor,
	shared.RoleUser,
).Error("role must be one of super_administrator, director, actor, user")

// ========================================
// AUTH DTOs
// ========================================

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r RefreshTokenRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RefreshToken, validation.Required),
	)
}

type LoginResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int      `json:"expires_in"` // seconds
	User         *UserDTO `json:"user"`
}

// ========================================
// USER MANAGEMENT DTOs
// ========================================

type CreateUserRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     shared.Role `json:"role"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 255)),
		validation.Field(&r.Email, validation.Required, is.Email, validation.Length(5, 255)),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be 8-128 characters"),
		),
		validation.Field(&r.Role, validation.Required, roleRule),
	)
}

// UpdateUserRequest carries a partial update; nil fields are unchanged.
type UpdateUserRequest struct {
	Name     *string      `json:"name,omitempty"`
	Email    *string      `json:"email,omitempty"`
	Password *string      `json:"password,omitempty"`
	Role     *shared.Role `json:"role,omitempty"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(2, 255)),
		validation.Field(&r.Email, validation.NilOrNotEmpty, is.Email),
		validation.Field(&r.Password, validation.NilOrNotEmpty, validation.Length(8, 128)),
		validation.Field(&r.Role, validation.NilOrNotEmpty, roleRule),
	)
}

// NormalizeEmail lower-cases and trims an address before storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
