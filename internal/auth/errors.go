package auth

import "errors"

var (
	// ErrMissingToken is returned when no token accompanies the request.
	ErrMissingToken = errors.New("missing auth token")

	// ErrInvalidToken is returned for unknown or expired tokens. Callers
	// must not disclose which condition failed.
	ErrInvalidToken = errors.New("invalid or expired token")
)
