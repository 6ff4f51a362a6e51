package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/taskhub/go-task-manager/internal/domain/entity"
	handlers "github.com/taskhub/go-task-manager/internal/interface/http"
	"github.com/taskhub/go-task-manager/internal/interface/middleware"
	"github.com/taskhub/go-task-manager/pkg/helpers"
)

// AdminModule wires the admin-only endpoints under /api/admin.
// Auth runs first, then the role guard; handlers never see non-admin traffic.
type AdminModule struct {
	Handler *handlers.AdminHandler
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(m.JWT), middleware.RequireRole(entity.RoleAdmin))
	{
		admin.GET("/users", m.Handler.ListUsers)
		admin.GET("/tasks", m.Handler.ListTasks)
		admin.GET("/stats", m.Handler.Stats)
		admin.DELETE("/tasks/:id", m.Handler.DeleteTask)
	}
}
