package errs_test

import (
	"errors"
	"testing"

	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("packageId", "123")

		assert.Equal(t, "packageId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("userId", "123", cause)

		assert.Equal(t,
			"object not found: param is: userId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidErrorWithCause("email", errors.New("invalid format"))

	assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("page", 0, 1, "unbounded")

		assert.Equal(t, "value is invalid: %!s(int=0) is page, min value is 1, max value is unbounded", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("phoneNumber")

	assert.Equal(t, "value is required: phoneNumber", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestValidationError(t *testing.T) {
	t.Run("collects every field", func(t *testing.T) {
		v := errs.NewValidationError()
		v.Add("weight", "must be at least 0.2")
		v.Add("weight", "must have at most 2 fractional digits")
		v.Collect("name", errors.New("is required"))
		v.Collect("description", nil)

		require.True(t, v.HasViolations())
		assert.Len(t, v.Fields["weight"], 2)
		assert.Equal(t, []string{"is required"}, v.Fields["name"])
		assert.NotContains(t, v.Fields, "description")
		assert.Equal(t,
			"validation failed: name: is required, weight: must be at least 0.2; must have at most 2 fractional digits",
			v.Error())
	})

	t.Run("OrNil returns untyped nil when empty", func(t *testing.T) {
		v := errs.NewValidationError()

		require.NoError(t, v.OrNil())
	})

	t.Run("errors.As finds the field map through wrapping", func(t *testing.T) {
		wrapped := errors.Join(errors.New("create package"), errs.NewFieldError("categoryId", "category not found"))

		var target *errs.ValidationError
		require.ErrorAs(t, wrapped, &target)
		require.ErrorIs(t, wrapped, errs.ErrValidation)
		assert.Equal(t, []string{"category not found"}, target.Fields["categoryId"])
	})
}

func TestAccessErrors(t *testing.T) {
	err := errs.NewForbiddenErrorWithReason("user:update", "target is an administrator")

	assert.Equal(t, "forbidden: user:update (target is an administrator)", err.Error())
	require.ErrorIs(t, err, errs.ErrForbidden)
	require.NotErrorIs(t, err, errs.ErrUnauthorized)
}

func TestConstraintErrors(t *testing.T) {
	t.Run("unique violation keeps its cause", func(t *testing.T) {
		cause := errors.New("duplicate key value violates unique constraint")
		err := errs.NewUniqueConstraintViolationError("departments_number_key", "number", cause)

		assert.Equal(t, "unique constraint violation: number already exists", err.Error())
		require.ErrorIs(t, err, errs.ErrUniqueConstraintViolation)
		require.ErrorIs(t, err, cause)
	})

	t.Run("max length", func(t *testing.T) {
		err := errs.NewMaxLengthExceededError("", nil)

		assert.Equal(t, "max length exceeded", err.Error())
		require.ErrorIs(t, err, errs.ErrMaxLengthExceeded)
	})

	t.Run("reference violation", func(t *testing.T) {
		err := errs.NewReferenceViolationError("packages_sender_department_id_fkey", nil)

		assert.Equal(t, "reference violation: packages_sender_department_id_fkey", err.Error())
		require.ErrorIs(t, err, errs.ErrReferenceViolation)
		require.NotErrorIs(t, err, errs.ErrUniqueConstraintViolation)
	})
}
