package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Registration validation errors. These are the only account-creation
	// failures ever shown to a user verbatim; everything else passes
	// through unmodified.
	ErrEmailInUse   = errors.New("email already in use")
	ErrWeakPassword = errors.New("weak credential")
	ErrInvalidEmail = errors.New("invalid email")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
