// Package security implements the password hashing and access token ports.
package security

import (
	"errors"
	"fmt"

	"parcels/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const errMsgFailedToGenerateHash = "failed to generate password hash"

// BcryptHasher implements ports.PasswordHasher.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher falls back to bcrypt.DefaultCost when cost is below bcrypt.MinCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash reports passwords bcrypt cannot take as a validation error on "password".
func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errs.NewValueIsRequiredError("password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", errs.NewFieldError("password", "password must be at most 72 bytes long")
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", errMsgFailedToGenerateHash, err)
	}

	return string(hashed), nil
}

// Compare returns errs.ErrUnauthorized on mismatch and for empty inputs.
func (h *BcryptHasher) Compare(hash, password string) error {
	if hash == "" || password == "" {
		return errs.ErrUnauthorized
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return errs.ErrUnauthorized
	default:
		return fmt.Errorf("%w: %w", errs.ErrUnauthorized, err)
	}
}
