package model

import "filmforge-backend/internal/shared/apperror"

// Error codes
const (
	ErrCodeReviewNotFound = "REVIEW_NOT_FOUND"
)

var ErrReviewNotFound = apperror.NotFound(ErrCodeReviewNotFound, "Review not found")
