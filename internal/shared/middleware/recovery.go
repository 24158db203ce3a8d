package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"filmforge-backend/internal/shared/response"
)

// Recovery turns a handler panic into a 500 envelope and logs the stack.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			log.Error().
				Str("request_id", c.GetString(ContextRequestID)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			response.ErrorResponse(c, http.StatusInternalServerError, "SYS_001", "Internal server error")
			c.Abort()
		}()

		c.Next()
	}
}
