package commands

import (
	"errors"
	"fmt"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// UserInput is the payload shared by user creation and update.
type UserInput struct {
	Role        kernel.Role
	FirstName   string
	LastName    string
	Email       *string
	PhoneNumber string
	Password    *string
}

// validUserInput normalises in and records every violation in v. A password is
// required for staff roles unless passwordOptional is set.
func validUserInput(v *errs.ValidationError, in UserInput, passwordOptional bool) UserInput {
	out := UserInput{
		Role:        requiredRole(v, in.Role),
		FirstName:   requiredString(v, "firstName", in.FirstName, maxNameLength),
		LastName:    requiredString(v, "lastName", in.LastName, maxNameLength),
		Email:       optionalEmail(v, in.Email),
		PhoneNumber: requiredString(v, "phoneNumber", in.PhoneNumber, maxPhoneNumberLength),
		Password:    validPassword(v, in.Password),
	}

	if out.Password == nil && in.Role.IsStaff() && !passwordOptional {
		v.Add("password", "password is required for "+in.Role.String()+" accounts")
	}

	return out
}

// validPassword keeps surrounding whitespace, it is part of the secret.
func validPassword(v *errs.ValidationError, password *string) *string {
	if password == nil || *password == "" {
		return nil
	}
	checkLength(v, "password", *password, maxPasswordLength)
	if len(*password) > maxPasswordBytes {
		v.Add("password", fmt.Sprintf("password must be at most %d bytes long", maxPasswordBytes))
	}
	return password
}

type CreateUserCommand struct {
	caller kernel.Caller
	input  UserInput

	guard guard.ConstructorGuard
}

func NewCreateUserCommand(caller kernel.Caller, in UserInput) (CreateUserCommand, error) {
	v := errs.NewValidationError()
	input := validUserInput(v, in, false)

	if err := v.OrNil(); err != nil {
		return CreateUserCommand{}, err
	}

	return CreateUserCommand{
		caller: caller,
		input:  input,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

func (c CreateUserCommand) Caller() kernel.Caller {
	return c.caller
}

func (c CreateUserCommand) Input() UserInput {
	return c.input
}
