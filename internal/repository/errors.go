package repository

import "errors"

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when a user insert violates the
	// unique constraint on email.
	ErrDuplicateEmail = errors.New("email already registered")
)
