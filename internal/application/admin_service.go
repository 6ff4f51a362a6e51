package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/taskhub/go-task-manager/internal/domain/entity"
	repo "github.com/taskhub/go-task-manager/internal/domain/repository"
)

// AdminService provides read-only cross-user aggregation and the single
// privileged mutation of the system: unconditional task deletion. The admin
// role check happens upstream in middleware; these methods assume it passed.
type AdminService struct {
	Users  repo.UserRepository
	Tasks  repo.TaskRepository
	Logger *logrus.Logger
}

func NewAdminService(users repo.UserRepository, tasks repo.TaskRepository, logger *logrus.Logger) *AdminService {
	return &AdminService{Users: users, Tasks: tasks, Logger: logger}
}

// Stats is recomputed from live data on every call, never cached.
type Stats struct {
	TotalUsers  int64 `json:"totalUsers"`
	TotalTasks  int64 `json:"totalTasks"`
	ActiveToday int64 `json:"activeToday"`
}

// ListUsers returns every user; password hashes are never serialized.
func (s *AdminService) ListUsers(ctx context.Context) ([]entity.User, error) {
	return s.Users.List(ctx)
}

// ListTasks returns every task system-wide with the owner's name and email.
func (s *AdminService) ListTasks(ctx context.Context) ([]entity.TaskWithOwner, error) {
	return s.Tasks.ListAllWithOwner(ctx)
}

// GetStats counts users, tasks, and tasks created since local midnight.
func (s *AdminService) GetStats(ctx context.Context) (Stats, error) {
	totalUsers, err := s.Users.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	totalTasks, err := s.Tasks.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	activeToday, err := s.Tasks.CountCreatedSince(ctx, midnight)
	if err != nil {
		return Stats{}, err
	}
	return Stats{TotalUsers: totalUsers, TotalTasks: totalTasks, ActiveToday: activeToday}, nil
}

// DeleteTask deletes regardless of owner. This is the only code path where
// ownership is bypassed.
func (s *AdminService) DeleteTask(ctx context.Context, taskID string) error {
	if err := s.Tasks.Delete(ctx, taskID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.Logger.WithFields(logrus.Fields{"task_id": taskID}).Info("task deleted by admin")
	return nil
}
