package service

import "errors"

var (
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserAlreadyExists is returned when registering with a taken email.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrNotFound covers a missing user or a task that is missing or not
	// owned by the caller. Ownership failures are deliberately
	// indistinguishable from non-existence.
	ErrNotFound = errors.New("not found")
	// ErrValidation marks caller-fault input errors; wrap it with the
	// field-specific message.
	ErrValidation = errors.New("validation failed")
)
