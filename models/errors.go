package models

import (
	"errors"
	"fmt"
)

// Domain error taxonomy. Services return these (possibly wrapped with
// detail); controllers translate them to HTTP exactly once.
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrConflict         = errors.New("conflict")
	ErrUpstream         = errors.New("upstream failure")
)

// Invalid wraps ErrValidation with a message safe to show the caller.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
