package entity

import (
	"time"
)

// Role represents an authorization role. Two roles exist; admins may read
// every task and delete any of them, regular users only their own.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the aggregate root for the user domain.
// PasswordHash holds a bcrypt hash; the plaintext is never stored and the
// hash is never serialized to API responses.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
