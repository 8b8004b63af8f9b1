// Package common defines shared sentinel errors used across the simulated
// backend. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Uniqueness-constraint violation (create or rename-on-update).
	ErrorAlreadyExists = errors.New("already exists")

	// Rejected input (shape/length rules).
	ErrorValidation = errors.New("validation error")

	// Auth-specific errors.
	ErrorInvalidLoginPassword = errors.New("invalid login/password")
	ErrorInvalidToken         = errors.New("invalid token")

	// Storage medium cannot be read or written. Surfaced, not retried.
	ErrorStorageUnavailable = errors.New("storage unavailable")
)
