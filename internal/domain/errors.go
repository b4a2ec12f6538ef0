package domain

import "errors"

// Sentinel errors shared across repositories, services and the HTTP layer.
// Repositories wrap them with context; callers classify with errors.Is.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a uniqueness constraint would be violated.
	ErrConflict = errors.New("already exists")
	// ErrInvalidInput indicates a validation or domain-rule failure.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthenticated indicates a missing, invalid or expired credential.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden indicates a valid credential with insufficient privilege.
	ErrForbidden = errors.New("forbidden")
)
