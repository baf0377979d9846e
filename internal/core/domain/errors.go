package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a write would violate a uniqueness constraint.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidReference indicates a write referenced an entity that does not exist,
	// such as a baked good pointing at an unknown bakery.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrNotImplemented indicates a required collaborator was not wired.
	ErrNotImplemented = errors.New("not implemented")
)
