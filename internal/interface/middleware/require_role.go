package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhub/go-task-manager/internal/domain/entity"
	"github.com/taskhub/go-task-manager/pkg/response"
)

// RequireRole composes after Auth and aborts with 403 when the resolved role
// does not match. Routes using it must install Auth first.
func RequireRole(role entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxUserRoleKey) != string(role) {
			response.AbortError(c, http.StatusForbidden, "insufficient permissions", nil)
			return
		}
		c.Next()
	}
}
