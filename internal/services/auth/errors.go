package auth

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user with that email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNoSession means the presented token does not resolve to any user.
	// Callers decide whether anonymous access is acceptable.
	ErrNoSession         = errors.New("no session for token")
	ErrInvalidResetToken = errors.New("invalid or expired password reset token")
)
