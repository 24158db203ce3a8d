package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmforge-backend/internal/shared"
	"filmforge-backend/pkg/jwt"
)

func newRouter(tokens *jwt.Manager, roles ...shared.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Recovery(zerolog.Nop()))

	handlers := []gin.HandlerFunc{Auth(tokens)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRoles(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": p.UserID.String(), "role": string(p.Role)})
	})
	r.GET("/protected", handlers...)
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func do(r http.Handler, token string, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	tokens := jwt.NewManager("secret", time.Hour, time.Hour)
	r := newRouter(tokens)
	userID := uuid.New()

	access, err := tokens.GenerateAccessToken(userID.String(), "a@b.c", string(shared.RoleActor))
	require.NoError(t, err)
	refresh, err := tokens.GenerateRefreshToken(userID.String())
	require.NoError(t, err)

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do(r, "", "/protected").Code)
	})

	t.Run("refresh token rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do(r, refresh, "/protected").Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do(r, "abc.def.ghi", "/protected").Code)
	})

	t.Run("valid token", func(t *testing.T) {
		w := do(r, access, "/protected")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.String())
		assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
	})
}

func TestRequireRoles(t *testing.T) {
	tokens := jwt.NewManager("secret", time.Hour, time.Hour)
	r := newRouter(tokens, shared.RoleSuperAdministrator, shared.RoleDirector)

	director, err := tokens.GenerateAccessToken(uuid.NewString(), "d@b.c", string(shared.RoleDirector))
	require.NoError(t, err)
	actor, err := tokens.GenerateAccessToken(uuid.NewString(), "a@b.c", string(shared.RoleActor))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, do(r, director, "/protected").Code)
	assert.Equal(t, http.StatusForbidden, do(r, actor, "/protected").Code)
}

func TestRecovery(t *testing.T) {
	r := newRouter(jwt.NewManager("secret", time.Hour, time.Hour))

	w := do(r, "", "/panic")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SYS_001")
}

func TestRequestID_Propagates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestID(), Logger(zerolog.New(&buf)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
}
