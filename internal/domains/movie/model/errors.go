package model

import (
	"fmt"

	"filmforge-backend/internal/shared/apperror"
)

const (
	ErrCodeMovieNotFound = "MOVIE_NOT_FOUND"
	ErrCodeMovieBusy     = "MOVIE_BUSY"
)

var (
	ErrMovieNotFound = apperror.NotFound(ErrCodeMovieNotFound, "Movie not found")
	ErrMovieBusy     = apperror.Conflict(ErrCodeMovieBusy, "Movie roster is being modified, try again")
)

// ProductionLockedError reports that an actor on m cannot be changed while
// m is being shot.
func ProductionLockedError(m *Movie) *apperror.Error {
	return apperror.ProductionLocked(
		fmt.Sprintf("Movie %q is in production and the actor is locked in", m.Title),
	).WithDetails(map[string]interface{}{
		"movie_id":     m.ID,
		"start_date":   m.StartDate,
		"release_date": m.ReleaseDate,
	})
}
