package errs

import (
	"errors"
	"sort"
	"strings"
)

var ErrValidation = errors.New("validation failed")

// ValidationError collects every violated field of a request payload.
// The zero value is ready to use.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// NewFieldError is a shortcut for a single violated field.
func NewFieldError(field, message string) *ValidationError {
	v := NewValidationError()
	v.Add(field, message)
	return v
}

func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// Collect records err under field when it is not nil.
func (e *ValidationError) Collect(field string, err error) {
	if err != nil {
		e.Add(field, err.Error())
	}
}

func (e *ValidationError) HasViolations() bool {
	return len(e.Fields) > 0
}

// OrNil returns nil when nothing was collected, so callers can return it directly.
func (e *ValidationError) OrNil() error {
	if !e.HasViolations() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e.Fields[f], "; "))
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
