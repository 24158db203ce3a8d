package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmforge-backend/internal/shared/apperror"
)

func render(t *testing.T, err error) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Fail(c, err)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestFail_BudgetExceeded(t *testing.T) {
	w, body := render(t, apperror.BudgetExceeded("Movie will be over budget"))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, apperror.CodeBudgetExceeded, body.Error.Code)
	assert.Equal(t, "Movie will be over budget", body.Error.Message)
}

func TestFail_HidesInternalMessages(t *testing.T) {
	w, body := render(t, apperror.Persistence("failed to save", errors.New("pq: password leaked")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", body.Error.Message)

	w, body = render(t, errors.New("raw"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Error.Code)
}

func TestFail_ValidationDetails(t *testing.T) {
	verrs := validation.Errors{"fee": errors.New("must be no less than 0")}
	w, body := render(t, apperror.Validation("invalid request", verrs))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	details, ok := body.Error.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, details, "fee")
}
