package user

import (
	"errors"
	"strings"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is the aggregate root for accounts. Uniqueness of email and phone number is
// enforced by the store and surfaces as errs.UniqueConstraintViolationError.
type User struct {
	id           int64
	role         kernel.Role
	firstName    string
	lastName     string
	email        *string
	phoneNumber  string
	passwordHash *string

	isConstructed bool
}

// NewUser creates a user that has not been persisted yet. The id is assigned by the store.
func NewUser(
	role kernel.Role,
	firstName, lastName string,
	email *string,
	phoneNumber string,
	passwordHash *string,
) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setRole(role),
		u.setName(firstName, lastName),
		u.setContacts(email, phoneNumber),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	if err := u.validatePassword(); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a persisted user.
func RestoreUser(
	id int64,
	role kernel.Role,
	firstName, lastName string,
	email *string,
	phoneNumber string,
	passwordHash *string,
) (*User, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("user id")
	}

	u, err := NewUser(role, firstName, lastName, email, phoneNumber, passwordHash)
	if err != nil {
		return nil, err
	}
	u.id = id

	return u, nil
}

func (u *User) Validate() error {
	if !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() int64 {
	return u.id
}

func (u *User) Role() kernel.Role {
	return u.role
}

func (u *User) FirstName() string {
	return u.firstName
}

func (u *User) LastName() string {
	return u.lastName
}

func (u *User) Email() *string {
	return u.email
}

func (u *User) PhoneNumber() string {
	return u.phoneNumber
}

func (u *User) PasswordHash() *string {
	return u.passwordHash
}

func (u *User) HasPassword() bool {
	return u.passwordHash != nil && *u.passwordHash != ""
}

// UpdateProfile replaces the personal and contact fields.
func (u *User) UpdateProfile(firstName, lastName string, email *string, phoneNumber string) error {
	return errors.Join(
		u.setName(firstName, lastName),
		u.setContacts(email, phoneNumber),
	)
}

// ChangeRole moves the user to role. Promoting to staff requires a password to be set already.
func (u *User) ChangeRole(role kernel.Role) error {
	previous := u.role
	if err := u.setRole(role); err != nil {
		return err
	}
	if err := u.validatePassword(); err != nil {
		u.role = previous
		return err
	}
	return nil
}

// ChangePassword stores a new hash; nil keeps the current one.
func (u *User) ChangePassword(passwordHash *string) error {
	if passwordHash == nil {
		return nil
	}
	return u.setPasswordHash(passwordHash)
}

// SetID is used by repositories once the store has assigned the identity.
func (u *User) SetID(id int64) {
	u.id = id
}

func (u *User) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setName(firstName, lastName string) error {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	var err error
	if firstName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("firstName"))
	}
	if lastName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("lastName"))
	}
	if err != nil {
		return err
	}

	u.firstName = firstName
	u.lastName = lastName
	return nil
}

func (u *User) setContacts(email *string, phoneNumber string) error {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return errs.NewValueIsRequiredError("phoneNumber")
	}

	if email != nil {
		trimmed := strings.TrimSpace(*email)
		if trimmed == "" {
			email = nil
		} else {
			email = &trimmed
		}
	}

	u.email = email
	u.phoneNumber = phoneNumber
	return nil
}

func (u *User) setPasswordHash(passwordHash *string) error {
	if passwordHash != nil && *passwordHash == "" {
		return errs.NewValueIsInvalidError("password hash is empty")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) validatePassword() error {
	if u.role.IsStaff() && !u.HasPassword() {
		return errs.NewValueIsRequiredErrorWithCause("password", errors.New(u.role.String()+" accounts must have a password"))
	}
	return nil
}
