// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when a path identifier is not an integer.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidVoteDelta is returned when a vote delta is missing or
	// not an integer.
	ErrInvalidVoteDelta = errors.New("invalid vote delta")
)
