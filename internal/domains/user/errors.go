package user

import "filmforge-backend/internal/shared/apperror"

// Error codes
const (
	ErrCodeUserNotFound       = "USER_NOT_FOUND"
	ErrCodeEmailExists        = "USER_EMAIL_EXISTS"
	ErrCodeInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	ErrCodeInvalidToken       = "AUTH_INVALID_TOKEN"
)

var (
	ErrUserNotFound       = apperror.NotFound(ErrCodeUserNotFound, "User not found")
	ErrEmailAlreadyExists = apperror.Conflict(ErrCodeEmailExists, "Email already registered")
	ErrInvalidCredentials = apperror.New(apperror.KindUnauthorized, ErrCodeInvalidCredentials, "Invalid email or password")
	ErrInvalidToken       = apperror.New(apperror.KindUnauthorized, ErrCodeInvalidToken, "Invalid or expired token")
)
