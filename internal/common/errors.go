// Package common defines shared constants and sentinel errors used across
// the layers of inkpad. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")

	// Login/registration outcomes surfaced to the rendering layer.
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrUsernameTaken   = errors.New("username taken")

	// Auth errors (invalid, malformed or expired session token).
	ErrInvalidToken = errors.New("invalid token")

	// Startup errors.
	ErrConfigMissing = errors.New("required configuration missing")
)
