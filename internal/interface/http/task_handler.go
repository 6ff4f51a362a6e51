package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/taskhub/go-task-manager/internal/application"
	"github.com/taskhub/go-task-manager/internal/interface/middleware"
	"github.com/taskhub/go-task-manager/pkg/response"
	"github.com/taskhub/go-task-manager/pkg/validation"
)

// TaskHandler serves the owner-scoped task CRUD endpoints. All routes run
// behind the Auth middleware, so the user ID is always present in context.
type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type createTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// Omitted or empty fields mean "no change", matching the fallback-to-existing
// update policy. There is no way to clear a field through this endpoint.
type updateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// List GET /api/tasks
func (h *TaskHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	tasks, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, tasks, "tasks")
}

// Create POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Create(c.Request.Context(), uid, application.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, t, "task created")
}

// Get GET /api/tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	t, err := h.Svc.Get(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, t, "task")
}

// Update PUT /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Update(c.Request.Context(), uid, c.Param("id"), application.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, t, "task updated")
}

// Delete DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, "task removed")
}
