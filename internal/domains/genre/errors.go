package genre

import "filmforge-backend/internal/shared/apperror"

const (
	ErrCodeGenreNotFound = "GENRE_NOT_FOUND"
	ErrCodeGenreExists   = "GENRE_ALREADY_EXISTS"
)

var (
	ErrGenreNotFound      = apperror.NotFound(ErrCodeGenreNotFound, "Genre not found")
	ErrGenreAlreadyExists = apperror.Conflict(ErrCodeGenreExists, "Genre with this name already exists")
)
