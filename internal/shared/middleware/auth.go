package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"filmforge-backend/internal/shared"
	"filmforge-backend/internal/shared/response"
	"filmforge-backend/pkg/jwt"
)

// Context keys set by Auth
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// TokenValidator is implemented by *jwt.Manager.
type TokenValidator interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

// Auth requires a valid "Bearer <access token>" header and stores the
// caller's id, email and role in the gin context.
func Auth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "invalid user ID in token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, shared.Role(claims.Role))
		c.Next()
	}
}

// GetPrincipal returns the caller stored by Auth.
func GetPrincipal(c *gin.Context) (shared.Principal, bool) {
	raw, ok := c.Get(ContextUserID)
	if !ok {
		return shared.Principal{}, false
	}
	userID, ok := raw.(uuid.UUID)
	if !ok {
		return shared.Principal{}, false
	}

	role, _ := c.Get(ContextRole)
	r, _ := role.(shared.Role)

	return shared.Principal{
		UserID: userID,
		Email:  c.GetString(ContextEmail),
		Role:   r,
	}, true
}
