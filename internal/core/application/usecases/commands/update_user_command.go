package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand replaces another user's profile and role. A nil password keeps
// the current one.
type UpdateUserCommand struct {
	caller kernel.Caller
	userID int64
	input  UserInput

	guard guard.ConstructorGuard
}

func NewUpdateUserCommand(caller kernel.Caller, userID int64, in UserInput) (UpdateUserCommand, error) {
	v := errs.NewValidationError()
	requiredID(v, "id", userID)
	input := validUserInput(v, in, true)

	if err := v.OrNil(); err != nil {
		return UpdateUserCommand{}, err
	}

	return UpdateUserCommand{
		caller: caller,
		userID: userID,
		input:  input,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

func (c UpdateUserCommand) Caller() kernel.Caller {
	return c.caller
}

func (c UpdateUserCommand) UserID() int64 {
	return c.userID
}

func (c UpdateUserCommand) Input() UserInput {
	return c.input
}
