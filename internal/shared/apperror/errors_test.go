package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf_WrappedChain(t *testing.T) {
	base := BudgetExceeded("movie will be over budget")
	wrapped := fmt.Errorf("create invitation: %w", base)

	assert.Equal(t, KindBudgetExceeded, KindOf(wrapped))
	assert.Equal(t, CodeBudgetExceeded, CodeOf(wrapped))
	assert.True(t, IsKind(wrapped, KindBudgetExceeded))
	assert.False(t, IsKind(nil, KindBudgetExceeded))
}

func TestKindOf_PlainError(t *testing.T) {
	err := errors.New("boom")

	assert.Equal(t, KindInternal, KindOf(err))
	assert.Equal(t, CodeInternal, CodeOf(err))
}

func TestError_IsMatchesSentinel(t *testing.T) {
	sentinel := NotFound("MOVIE_NOT_FOUND", "movie not found")
	err := fmt.Errorf("lookup: %w", NotFound("MOVIE_NOT_FOUND", "movie 42 not found"))

	assert.ErrorIs(t, err, sentinel)
	assert.NotErrorIs(t, err, NotFound("ACTOR_NOT_FOUND", "actor not found"))
}

func TestError_UnwrapAndMessage(t *testing.T) {
	cause := errors.New("connection reset")
	err := Persistence("failed to save actor", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to save actor: connection reset", err.Error())
}

func TestWithDetails_DoesNotMutateOriginal(t *testing.T) {
	base := Validation("invalid request", nil)
	detailed := base.WithDetails(map[string]string{"fee": "must be >= 0"})

	assert.Nil(t, base.Details)
	assert.NotNil(t, detailed.Details)
	assert.Equal(t, base.Code, detailed.Code)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindNotFound, http.StatusNotFound},
		{KindBudgetExceeded, http.StatusUnprocessableEntity},
		{KindProductionLocked, http.StatusConflict},
		{KindConflict, http.StatusConflict},
		{KindValidation, http.StatusBadRequest},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindPersistence, http.StatusInternalServerError},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.kind))
		})
	}
}
