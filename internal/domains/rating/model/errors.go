package model

import "filmforge-backend/internal/shared/apperror"

const (
	ErrCodeRatingNotFound = "RATING_NOT_FOUND"
	ErrCodeAlreadyRated   = "RATING_ALREADY_EXISTS"
)

var (
	ErrRatingNotFound = apperror.NotFound(ErrCodeRatingNotFound, "Rating not found")
	ErrAlreadyRated   = apperror.Conflict(ErrCodeAlreadyRated, "You have already rated this movie")
)
