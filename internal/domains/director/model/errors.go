package model

import "filmforge-backend/internal/shared/apperror"

const (
	ErrCodeDirectorNotFound = "DIRECTOR_NOT_FOUND"
	ErrCodeUserLinked       = "DIRECTOR_USER_ALREADY_LINKED"
)

var (
	ErrDirectorNotFound = apperror.NotFound(ErrCodeDirectorNotFound, "Director not found")
	ErrUserLinked       = apperror.Conflict(ErrCodeUserLinked, "User is already linked to another director")
)
