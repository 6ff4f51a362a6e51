package repository

import (
	"context"

	"github.com/taskhub/go-task-manager/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// Create returns ErrDuplicateEmail when the email is already taken; lookups
// return ErrNotFound for absent rows.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Count(ctx context.Context) (int64, error)
}
