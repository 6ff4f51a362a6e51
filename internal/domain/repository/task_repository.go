package repository

import (
	"context"
	"time"

	"github.com/taskhub/go-task-manager/internal/domain/entity"
)

// TaskRepository defines the interface for task-related database operations.
// GetByID is unscoped; ownership decisions belong to the service layer so the
// admin bypass can share the same storage methods.
type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Task, error)
	ListAllWithOwner(ctx context.Context) ([]entity.TaskWithOwner, error)
	Update(ctx context.Context, t *entity.Task) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}
