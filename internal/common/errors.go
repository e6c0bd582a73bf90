// Package common defines shared constants and sentinel errors used across
// the Pixelmart client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (missing or malformed token).
	ErrNoToken      = errors.New("no token provided")
	ErrInvalidToken = errors.New("invalid token")

	// Cart errors.
	ErrEmptyCart = errors.New("cart is empty")
)
