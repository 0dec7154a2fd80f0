package errs

import (
	"errors"
	"fmt"
)

var (
	ErrUniqueConstraintViolation = errors.New("unique constraint violation")
	ErrMaxLengthExceeded         = errors.New("max length exceeded")
)

// UniqueConstraintViolationError is the storage-agnostic form of a duplicate key error.
// Field names the request field the constraint guards, when it is known.
type UniqueConstraintViolationError struct {
	Constraint string
	Field      string
	Cause      error
}

func NewUniqueConstraintViolationError(constraint, field string, cause error) *UniqueConstraintViolationError {
	return &UniqueConstraintViolationError{
		Constraint: constraint,
		Field:      field,
		Cause:      cause,
	}
}

func (e *UniqueConstraintViolationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s already exists", ErrUniqueConstraintViolation, e.Field)
	}
	return fmt.Sprintf("%s: %s", ErrUniqueConstraintViolation, e.Constraint)
}

func (e *UniqueConstraintViolationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrUniqueConstraintViolation}
	}
	return []error{ErrUniqueConstraintViolation, e.Cause}
}

type MaxLengthExceededError struct {
	Column string
	Cause  error
}

func NewMaxLengthExceededError(column string, cause error) *MaxLengthExceededError {
	return &MaxLengthExceededError{
		Column: column,
		Cause:  cause,
	}
}

func (e *MaxLengthExceededError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s: %s", ErrMaxLengthExceeded, e.Column)
	}
	return ErrMaxLengthExceeded.Error()
}

func (e *MaxLengthExceededError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrMaxLengthExceeded}
	}
	return []error{ErrMaxLengthExceeded, e.Cause}
}

var ErrReferenceViolation = errors.New("reference violation")

// ReferenceViolationError reports a write that would leave a dangling reference,
// such as deleting a department that packages still point to.
type ReferenceViolationError struct {
	Constraint string
	Cause      error
}

func NewReferenceViolationError(constraint string, cause error) *ReferenceViolationError {
	return &ReferenceViolationError{
		Constraint: constraint,
		Cause:      cause,
	}
}

func (e *ReferenceViolationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrReferenceViolation, e.Constraint)
}

func (e *ReferenceViolationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrReferenceViolation}
	}
	return []error{ErrReferenceViolation, e.Cause}
}
