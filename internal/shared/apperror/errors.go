package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error. Handlers map kinds to HTTP status
// codes; services and repositories only ever pick a kind.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindBudgetExceeded
	KindProductionLocked
	KindPersistence
	KindValidation
	KindConflict
	KindUnauthorized
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindBudgetExceeded:
		return "budget_exceeded"
	case KindProductionLocked:
		return "production_locked"
	case KindPersistence:
		return "persistence"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "internal"
	}
}

// Error codes shared across domains
const (
	CodeBudgetExceeded   = "BUDGET_EXCEEDED"
	CodeProductionLocked = "PRODUCTION_LOCKED"
	CodePersistence      = "PERSISTENCE_ERROR"
	CodeValidation       = "VALIDATION_ERROR"
	CodeConflict         = "CONFLICT"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeInternal         = "INTERNAL_SERVER_ERROR"
)

// Error is the coded error returned by services and repositories.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details interface{}
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind and code, so
// sentinel values declared with New can be matched with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func Wrap(kind Kind, code, message string, err error) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Err: err}
}

// WithDetails returns a copy of e carrying details for the response body.
func (e *Error) WithDetails(details interface{}) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

// Constructors

func NotFound(code, message string) *Error {
	return New(KindNotFound, code, message)
}

func BudgetExceeded(message string) *Error {
	return New(KindBudgetExceeded, CodeBudgetExceeded, message)
}

func ProductionLocked(message string) *Error {
	return New(KindProductionLocked, CodeProductionLocked, message)
}

func Persistence(message string, err error) *Error {
	return Wrap(KindPersistence, CodePersistence, message, err)
}

func Validation(message string, err error) *Error {
	return Wrap(KindValidation, CodeValidation, message, err)
}

func Conflict(code, message string) *Error {
	return New(KindConflict, code, message)
}

func Unauthorized(message string) *Error {
	return New(KindUnauthorized, CodeUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(KindForbidden, CodeForbidden, message)
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// HTTPStatus maps a kind to its response status code.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindBudgetExceeded:
		return http.StatusUnprocessableEntity
	case KindProductionLocked, KindConflict:
		return http.StatusConflict
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// CodeOf returns the code of the first *Error in err's chain.
func CodeOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Code != "" {
		return appErr.Code
	}
	return CodeInternal
}
