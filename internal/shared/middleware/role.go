package middleware

import (
	"github.com/gin-gonic/gin"

	"filmforge-backend/internal/shared"
	"filmforge-backend/internal/shared/response"
)

// RequireRoles allows the request through only when the role set by Auth
// is one of roles.
func RequireRoles(roles ...shared.Role) gin.HandlerFunc {
	allowed := make(map[shared.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		raw, exists := c.Get(ContextRole)
		role, ok := raw.(shared.Role)
		if !exists || !ok {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		if _, ok := allowed[role]; !ok {
			response.Forbidden(c, "Access denied: insufficient role")
			c.Abort()
			return
		}

		c.Next()
	}
}

// SuperAdministrator is RequireRoles(RoleSuperAdministrator).
func SuperAdministrator() gin.HandlerFunc {
	return RequireRoles(shared.RoleSuperAdministrator)
}
