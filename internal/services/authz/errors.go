package authz

import "errors"

var (
	// ErrUnauthenticated means no session could be resolved for an
	// operation that requires one.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrUnauthorized means the session resolved but the actor lacks
	// ownership or a sufficient role for the operation.
	ErrUnauthorized = errors.New("insufficient permissions")
)
