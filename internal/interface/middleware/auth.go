package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhub/go-task-manager/pkg/helpers"
	"github.com/taskhub/go-task-manager/pkg/response"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserIDKey   = "userID"
	CtxUserRoleKey = "userRole"
)

// Auth reads the session cookie, validates the token, and injects the
// resolved user ID and role into the Gin context. Missing, invalid, and
// expired tokens all abort with 401 before any handler runs.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookieName)
		if err != nil || token == "" {
			response.AbortError(c, http.StatusUnauthorized, "not authenticated", nil)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid or expired session", nil)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserRoleKey, claims.Role)
		c.Next()
	}
}
