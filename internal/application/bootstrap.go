package application

import (
	"context"
	"errors"

	"github.com/taskhub/go-task-manager/internal/domain/entity"
	repo "github.com/taskhub/go-task-manager/internal/domain/repository"
)

// AdminSeed describes the fixed administrator account created at startup.
type AdminSeed struct {
	Name     string
	Email    string
	Password string
}

// EnsureAdmin is an idempotent startup-time reconciliation step: it creates
// the administrator account if absent and does nothing otherwise. Safe to run
// on every boot and from the seed command.
func (s *UserService) EnsureAdmin(ctx context.Context, seed AdminSeed) error {
	email := NormalizeEmail(seed.Email)
	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		s.Logger.WithField("email", email).Debug("admin account already present")
		return nil
	} else if !errors.Is(err, repo.ErrNotFound) {
		return err
	}

	_, err := s.Register(ctx, RegisterInput{
		Name:     seed.Name,
		Email:    email,
		Password: seed.Password,
		Role:     entity.RoleAdmin,
	})
	if errors.Is(err, ErrEmailTaken) {
		// Lost the race to a concurrent boot; the account exists now.
		return nil
	}
	if err != nil {
		return err
	}
	s.Logger.WithField("email", email).Info("admin account seeded")
	return nil
}
