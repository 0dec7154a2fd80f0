package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

type DeleteUserCommand struct {
	caller kernel.Caller
	userID int64

	guard guard.ConstructorGuard
}

func NewDeleteUserCommand(caller kernel.Caller, userID int64) (DeleteUserCommand, error) {
	v := errs.NewValidationError()
	requiredID(v, "id", userID)
	if err := v.OrNil(); err != nil {
		return DeleteUserCommand{}, err
	}

	return DeleteUserCommand{
		caller: caller,
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

func (c DeleteUserCommand) Caller() kernel.Caller {
	return c.caller
}

func (c DeleteUserCommand) UserID() int64 {
	return c.userID
}
