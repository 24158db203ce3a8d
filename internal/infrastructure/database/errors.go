package database

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"filmforge-backend/internal/shared/apperror"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// MapError translates a pgx error into an apperror. notFound and conflict
// are returned for missing rows and unique violations when non-nil; every
// other failure becomes a Persistence error described by op.
func MapError(err error, op string, notFound, conflict *apperror.Error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) && notFound != nil {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if conflict != nil {
				return conflict
			}
			return apperror.Wrap(apperror.KindConflict, apperror.CodeConflict, "resource already exists", err)
		case pgForeignKeyViolation:
			return apperror.Validation("operation violates a reference to a related resource", err).
				WithDetails(map[string]string{"constraint": pgErr.ConstraintName})
		case pgCheckViolation:
			return apperror.Validation("value violates constraint", err).
				WithDetails(map[string]string{"constraint": pgErr.ConstraintName})
		}
	}

	return apperror.Persistence(op, err)
}
