package models

import (
	"errors"
	"fmt"
)

// ErrRejected marks an operation that was refused and returned its input unchanged.
// Every rejection sentinel in the core wraps it, so callers can test with errors.Is.
var ErrRejected = errors.New("operation rejected")

// Rejection builds a sentinel that wraps ErrRejected.
func Rejection(reason string) error {
	return fmt.Errorf("%w: %s", ErrRejected, reason)
}

// IsRejected reports whether err is a no-op rejection rather than a failure.
func IsRejected(err error) bool {
	return errors.Is(err, ErrRejected)
}
