package application

import "errors"

// Service-level error taxonomy. Handlers map these onto HTTP statuses;
// anything else is treated as an internal error and never leaks details.
var (
	// ErrInvalidCredentials covers both "no such email" and "wrong password"
	// so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when registering with an existing email.
	ErrEmailTaken = errors.New("user already exists")

	// ErrValidation is returned for malformed input caught at service level.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound is returned when a record is absent, or deliberately when a
	// task exists but belongs to another user (existence masking).
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when an authenticated caller is not allowed to
	// perform the operation (non-owner delete).
	ErrForbidden = errors.New("forbidden")
)
