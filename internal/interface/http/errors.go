package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/taskhub/go-task-manager/internal/application"
	"github.com/taskhub/go-task-manager/pkg/response"
)

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Unknown errors answer 500 with a generic message; details are only logged.
func writeServiceError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrValidation):
		response.Error(c, http.StatusBadRequest, "invalid input", nil)
	case errors.Is(err, application.ErrEmailTaken):
		response.Error(c, http.StatusBadRequest, "user already exists", nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "invalid email or password", nil)
	case errors.Is(err, application.ErrForbidden):
		response.Error(c, http.StatusForbidden, "not authorized to perform this action", nil)
	case errors.Is(err, application.ErrNotFound):
		response.Error(c, http.StatusNotFound, "not found", nil)
	default:
		logger.WithError(err).WithField("path", c.FullPath()).Error("unexpected service error")
		response.Error(c, http.StatusInternalServerError, "internal error", nil)
	}
}
