package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrUpdateMeCommandIsNotConstructed = errors.New(
	"UpdateMeCommand must be created via NewUpdateMeCommand constructor",
)

// ProfileInput is what any user may change about themselves. Role is not part of it.
type ProfileInput struct {
	FirstName   string
	LastName    string
	Email       *string
	PhoneNumber string
	Password    *string
}

type UpdateMeCommand struct {
	caller kernel.Caller
	input  ProfileInput

	guard guard.ConstructorGuard
}

func NewUpdateMeCommand(caller kernel.Caller, in ProfileInput) (UpdateMeCommand, error) {
	v := errs.NewValidationError()

	input := ProfileInput{
		FirstName:   requiredString(v, "firstName", in.FirstName, maxNameLength),
		LastName:    requiredString(v, "lastName", in.LastName, maxNameLength),
		Email:       optionalEmail(v, in.Email),
		PhoneNumber: requiredString(v, "phoneNumber", in.PhoneNumber, maxPhoneNumberLength),
		Password:    validPassword(v, in.Password),
	}

	if err := v.OrNil(); err != nil {
		return UpdateMeCommand{}, err
	}

	return UpdateMeCommand{
		caller: caller,
		input:  input,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateMeCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMeCommandIsNotConstructed)
}

func (c UpdateMeCommand) Caller() kernel.Caller {
	return c.caller
}

func (c UpdateMeCommand) Input() ProfileInput {
	return c.input
}
