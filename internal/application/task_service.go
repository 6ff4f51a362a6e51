package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/taskhub/go-task-manager/internal/domain/entity"
	repo "github.com/taskhub/go-task-manager/internal/domain/repository"
)

// TaskService implements ownership-scoped task CRUD. Reads and updates mask
// foreign tasks as not-found so other users' task IDs cannot be probed;
// owner-scoped deletion reports an explicit forbidden instead.
type TaskService struct {
	Repo   repo.TaskRepository
	Logger *logrus.Logger
}

func NewTaskService(r repo.TaskRepository, logger *logrus.Logger) *TaskService {
	return &TaskService{Repo: r, Logger: logger}
}

type CreateTaskInput struct {
	Title       string
	Description string
}

type UpdateTaskInput struct {
	Title       string
	Description string
}

// List returns all tasks owned by userID in insertion order.
func (s *TaskService) List(ctx context.Context, userID string) ([]entity.Task, error) {
	return s.Repo.ListByOwner(ctx, userID)
}

// Create persists a new task owned by userID.
func (s *TaskService) Create(ctx context.Context, userID string, in CreateTaskInput) (*entity.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrValidation
	}
	t := &entity.Task{
		Title:       title,
		Description: in.Description,
		OwnerID:     userID,
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"task_id": t.ID, "user_id": userID}).Debug("task created")
	return t, nil
}

// Get returns the task only if it exists and is owned by userID.
func (s *TaskService) Get(ctx context.Context, userID, taskID string) (*entity.Task, error) {
	t, err := s.Repo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if t.OwnerID != userID {
		// Ownership mismatch reported identically to non-existence.
		return nil, ErrNotFound
	}
	return t, nil
}

// Update applies the provided fields under the same ownership mask as Get.
// Empty fields fall back to the existing values; there is no way to clear a
// field through this operation. Last write wins.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, in UpdateTaskInput) (*entity.Task, error) {
	t, err := s.Get(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if title := strings.TrimSpace(in.Title); title != "" {
		t.Title = title
	}
	if in.Description != "" {
		t.Description = in.Description
	}
	if err := s.Repo.Update(ctx, t); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// Delete removes the task when owned by userID. Unlike reads, a foreign task
// yields an explicit forbidden rather than a masked not-found.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	t, err := s.Repo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if t.OwnerID != userID {
		return ErrForbidden
	}
	if err := s.Repo.Delete(ctx, taskID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.Logger.WithFields(logrus.Fields{"task_id": taskID, "user_id": userID}).Debug("task deleted")
	return nil
}
