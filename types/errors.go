package types

import (
	errors "github.com/pkg/errors"
)

// ErrInvariantViolation is the only error kind this library
// raises. It means a tag/payload pair, a dict cell, or a wire payload
// is internally inconsistent - a code generation or memory corruption
// bug upstream, not a condition to recover from or retry.
var ErrInvariantViolation = errors.New("invariant violation")

// InvariantViolationf wraps ErrInvariantViolation with context about
// the inconsistency that was found.
func InvariantViolationf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvariantViolation, format, args...)
}

// IsInvariantViolation reports whether err is an invariant violation
// anywhere along its cause chain.
func IsInvariantViolation(err error) bool {
	return errors.Cause(err) == ErrInvariantViolation
}
