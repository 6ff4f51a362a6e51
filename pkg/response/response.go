package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type APIResponse[T any] struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      T           `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
}

// Success writes a success envelope with the given payload.
func Success[T any](ctx *gin.Context, status int, data T, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   true,
		Message:   message,
		Data:      data,
	})
}

// Error writes an error envelope. Internal details never reach the body;
// callers pass human-readable messages and optional field details only.
func Error(ctx *gin.Context, status int, message string, details interface{}) {
	ctx.JSON(status, envelope(ctx, status, message, details))
}

// AbortError writes an error envelope and aborts the handler chain.
// Used by middleware so the business handler never runs after a failure.
func AbortError(ctx *gin.Context, status int, message string, details interface{}) {
	ctx.AbortWithStatusJSON(status, envelope(ctx, status, message, details))
}

func envelope(ctx *gin.Context, status int, message string, details interface{}) APIResponse[any] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	return APIResponse[any]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   false,
		Message:   message,
		Error:     details,
	}
}
