package repository

import "errors"

// Storage-level sentinel errors. Services translate these into their own
// error taxonomy before they reach handlers.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)
