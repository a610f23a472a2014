package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested document does not exist.
	// The tool-call boundary converts this into a structured result
	// field rather than a protocol-level failure.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates a service dependency is not wired.
	ErrNotImplemented = errors.New("not implemented")
)
