package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/taskhub/go-task-manager/internal/application"
	"github.com/taskhub/go-task-manager/pkg/response"
)

// AdminHandler serves the admin-only aggregation and moderation endpoints.
// Role enforcement is middleware's job; nothing here re-checks it.
type AdminHandler struct {
	Svc    *application.AdminService
	Logger *logrus.Logger
}

func NewAdminHandler(svc *application.AdminService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Logger: logger}
}

// ListUsers GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Svc.ListUsers(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, users, "users")
}

// ListTasks GET /api/admin/tasks
func (h *AdminHandler) ListTasks(c *gin.Context) {
	tasks, err := h.Svc.ListTasks(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, tasks, "all tasks")
}

// Stats GET /api/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.Svc.GetStats(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, stats, "stats")
}

// DeleteTask DELETE /api/admin/tasks/:id
func (h *AdminHandler) DeleteTask(c *gin.Context) {
	if err := h.Svc.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, "task deleted")
}
