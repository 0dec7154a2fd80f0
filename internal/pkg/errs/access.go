package errs

import (
	"errors"
	"fmt"
)

var (
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

// ForbiddenError is returned when an authenticated caller is denied by policy.
type ForbiddenError struct {
	Operation string
	Reason    string
}

func NewForbiddenError(operation string) *ForbiddenError {
	return &ForbiddenError{Operation: operation}
}

func NewForbiddenErrorWithReason(operation, reason string) *ForbiddenError {
	return &ForbiddenError{
		Operation: operation,
		Reason:    reason,
	}
}

func (e *ForbiddenError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s (%s)", ErrForbidden, e.Operation, e.Reason)
	}
	return fmt.Sprintf("%s: %s", ErrForbidden, e.Operation)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}
