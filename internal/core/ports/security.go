package ports

import (
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/user"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns errs.ErrUnauthorized when the password does not match.
	Compare(hash, password string) error
}

// Claims is what an access token carries about its subject.
type Claims struct {
	ID          int64
	Role        kernel.Role
	FirstName   string
	LastName    string
	Email       *string
	PhoneNumber string
}

// ClaimsFromUser snapshots the user into token claims.
func ClaimsFromUser(u *user.User) Claims {
	return Claims{
		ID:          u.ID(),
		Role:        u.Role(),
		FirstName:   u.FirstName(),
		LastName:    u.LastName(),
		Email:       u.Email(),
		PhoneNumber: u.PhoneNumber(),
	}
}

// Caller is the identity the claims authenticate.
func (c Claims) Caller() kernel.Caller {
	return kernel.Caller{ID: c.ID, Role: c.Role}
}

type TokenIssuer interface {
	Issue(claims Claims) (string, error)
}

type TokenValidator interface {
	// Validate returns errs.ErrUnauthorized for malformed, expired or foreign tokens.
	Validate(token string) (Claims, error)
}
