// Package errs provides standardized error types for the parcels application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside of its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - ValidationError: Field-level violations collected from a request payload
//   - UniqueConstraintViolationError and MaxLengthExceededError: Storage constraint failures
//   - ForbiddenError and ErrUnauthorized: Access control failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Transport adapters classify errors with errors.Is against the sentinels and
// errors.As against the struct types.
package errs
