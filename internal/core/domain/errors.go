package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	// Every validation failure wraps this error.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOutOfRange indicates a clause issue index outside the active document's issues.
	ErrOutOfRange = errors.New("index out of range")

	// ErrUnsupportedType indicates a file type no normaliser accepts.
	ErrUnsupportedType = errors.New("unsupported type")
)

// Validation errors. Each wraps ErrInvalidInput.
var (
	// ErrEmptyMessage indicates a chat message that is empty after trimming.
	ErrEmptyMessage = fmt.Errorf("%w: message is empty", ErrInvalidInput)

	// ErrNoActiveDocument indicates an operation that needs an active document ran without one.
	ErrNoActiveDocument = fmt.Errorf("%w: no active document", ErrInvalidInput)

	// ErrUnknownSeverity indicates a severity outside high, medium and low.
	ErrUnknownSeverity = fmt.Errorf("%w: unknown severity", ErrInvalidInput)

	// ErrUnknownView indicates a view name that is not one of the workspace views.
	ErrUnknownView = fmt.Errorf("%w: unknown view", ErrInvalidInput)
)
