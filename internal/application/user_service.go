package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/taskhub/go-task-manager/internal/domain/entity"
	repo "github.com/taskhub/go-task-manager/internal/domain/repository"
	"github.com/taskhub/go-task-manager/pkg/helpers"
)

// UserService implements the credential store: registration with salted
// bcrypt hashing and login verification. Hashing happens only here; the
// repositories never touch plaintext or re-hash stored values.
type UserService struct {
	Repo       repo.UserRepository
	JWT        *helpers.JWTManager
	Logger     *logrus.Logger
	BcryptCost int
}

func NewUserService(r repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger, bcryptCost int) *UserService {
	return &UserService{Repo: r, JWT: jwt, Logger: logger, BcryptCost: bcryptCost}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role // optional; defaults to RoleUser
}

// Register hashes the password and persists a new user. The email is
// lowercased before storage so uniqueness is case-insensitive.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	name := strings.TrimSpace(in.Name)
	email := NormalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, ErrValidation
	}

	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !role.Valid() {
		return nil, ErrValidation
	}

	hash, err := helpers.HashPassword(in.Password, s.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "role": u.Role}).Info("user registered")
	return u, nil
}

// Authenticate verifies email/password. Unknown email and wrong password are
// indistinguishable to the caller; storage failures are not credential
// failures and propagate unchanged.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// IssueToken generates a signed session token for the user.
func (s *UserService) IssueToken(u *entity.User) (string, time.Time, error) {
	token, exp, err := s.JWT.Generate(u.ID, string(u.Role))
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate session token failed")
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// GetProfile returns the user for the given id.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// NormalizeEmail lowercases and trims an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
