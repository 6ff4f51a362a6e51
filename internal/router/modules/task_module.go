package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/taskhub/go-task-manager/internal/interface/http"
	"github.com/taskhub/go-task-manager/internal/interface/middleware"
	"github.com/taskhub/go-task-manager/pkg/helpers"
)

// TaskModule wires the owner-scoped task CRUD under /api/tasks.
// Every route requires an authenticated session.
type TaskModule struct {
	Handler *handlers.TaskHandler
	JWT     *helpers.JWTManager
}

func NewTaskModule(h *handlers.TaskHandler, jwt *helpers.JWTManager) *TaskModule {
	return &TaskModule{Handler: h, JWT: jwt}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	tasks := rg.Group("/tasks")
	tasks.Use(middleware.Auth(m.JWT))
	{
		tasks.GET("", m.Handler.List)
		tasks.POST("", m.Handler.Create)
		tasks.GET("/:id", m.Handler.Get)
		tasks.PUT("/:id", m.Handler.Update)
		tasks.DELETE("/:id", m.Handler.Delete)
	}
}
