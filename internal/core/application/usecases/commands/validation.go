package commands

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	maxNameLength        = 30
	maxPhoneNumberLength = 20
	maxEmailLength       = 50
	maxPasswordLength    = 30
	// bcrypt hashes at most this many bytes of a password.
	maxPasswordBytes     = 72
)

func requiredString(v *errs.ValidationError, field, value string, maxLength int) string {
	value = strings.TrimSpace(value)
	if value == "" {
		v.Add(field, field+" is required")
		return value
	}
	checkLength(v, field, value, maxLength)
	return value
}

// optionalString treats nil and blank as absent.
func optionalString(v *errs.ValidationError, field string, value *string, maxLength int) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	checkLength(v, field, trimmed, maxLength)
	return &trimmed
}

func checkLength(v *errs.ValidationError, field, value string, maxLength int) {
	if utf8.RuneCountInString(value) > maxLength {
		v.Add(field, fmt.Sprintf("%s must be at most %d characters", field, maxLength))
	}
}

func optionalEmail(v *errs.ValidationError, value *string) *string {
	email := optionalString(v, "email", value, maxEmailLength)
	if email == nil {
		return nil
	}
	addr, err := mail.ParseAddress(*email)
	if err != nil || addr.Address != *email {
		v.Add("email", "email is not a valid email address")
	}
	return email
}

func requiredID(v *errs.ValidationError, field string, id int64) int64 {
	switch {
	case id == 0:
		v.Add(field, field+" is required")
	case id < 0:
		v.Add(field, field+" must be a positive id")
	}
	return id
}

// requiredAmount checks a decimal against its column shape and lower bound. The bound
// is only compared once the shape fits.
func requiredAmount(
	v *errs.ValidationError,
	field string,
	value *decimal.Decimal,
	shape kernel.DecimalShape,
	minValue decimal.Decimal,
) decimal.Decimal {
	if value == nil {
		v.Add(field, field+" is required")
		return decimal.Zero
	}
	if err := shape.Check(*value); err != nil {
		v.Add(field, field+" "+err.Error())
		return *value
	}
	if value.LessThan(minValue) {
		v.Add(field, fmt.Sprintf("%s must be greater than or equal to %s", field, minValue.StringFixed(2)))
	}
	return *value
}

func requiredRole(v *errs.ValidationError, role kernel.Role) kernel.Role {
	if role == kernel.RoleUnknown {
		v.Add("role", "role is required")
		return role
	}
	if err := role.Validate(); err != nil {
		v.Add("role", "role must be one of Admin, Manager, Client")
	}
	return role
}
