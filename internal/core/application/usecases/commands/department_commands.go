package commands

import (
	"errors"

	"parcels/internal/core/domain/model/department"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	ErrCreateDepartmentCommandIsNotConstructed = errors.New(
		"CreateDepartmentCommand must be created via NewCreateDepartmentCommand constructor",
	)
	ErrUpdateDepartmentCommandIsNotConstructed = errors.New(
		"UpdateDepartmentCommand must be created via NewUpdateDepartmentCommand constructor",
	)
	ErrDeleteDepartmentCommandIsNotConstructed = errors.New(
		"DeleteDepartmentCommand must be created via NewDeleteDepartmentCommand constructor",
	)
)

func validDepartment(v *errs.ValidationError, number int, fullAddress string) (int, string) {
	if number == 0 {
		v.Add("number", "number is required")
	}
	return number, requiredString(v, "fullAddress", fullAddress, department.MaxFullAddressLength)
}

type CreateDepartmentCommand struct {
	caller      kernel.Caller
	number      int
	fullAddress string

	guard guard.ConstructorGuard
}

func NewCreateDepartmentCommand(caller kernel.Caller, number int, fullAddress string) (CreateDepartmentCommand, error) {
	v := errs.NewValidationError()
	number, fullAddress = validDepartment(v, number, fullAddress)
	if err := v.OrNil(); err != nil {
		return CreateDepartmentCommand{}, err
	}

	return CreateDepartmentCommand{
		caller:      caller,
		number:      number,
		fullAddress: fullAddress,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDepartmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateDepartmentCommandIsNotConstructed)
}

func (c CreateDepartmentCommand) Caller() kernel.Caller { return c.caller }
func (c CreateDepartmentCommand) Number() int           { return c.number }
func (c CreateDepartmentCommand) FullAddress() string   { return c.fullAddress }

type UpdateDepartmentCommand struct {
	caller       kernel.Caller
	departmentID int64
	number       int
	fullAddress  string

	guard guard.ConstructorGuard
}

func NewUpdateDepartmentCommand(
	caller kernel.Caller,
	departmentID int64,
	number int,
	fullAddress string,
) (UpdateDepartmentCommand, error) {
	v := errs.NewValidationError()
	requiredID(v, "id", departmentID)
	number, fullAddress = validDepartment(v, number, fullAddress)
	if err := v.OrNil(); err != nil {
		return UpdateDepartmentCommand{}, err
	}

	return UpdateDepartmentCommand{
		caller:       caller,
		departmentID: departmentID,
		number:       number,
		fullAddress:  fullAddress,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDepartmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDepartmentCommandIsNotConstructed)
}

func (c UpdateDepartmentCommand) Caller() kernel.Caller { return c.caller }
func (c UpdateDepartmentCommand) DepartmentID() int64   { return c.departmentID }
func (c UpdateDepartmentCommand) Number() int           { return c.number }
func (c UpdateDepartmentCommand) FullAddress() string   { return c.fullAddress }

type DeleteDepartmentCommand struct {
	caller       kernel.Caller
	departmentID int64

	guard guard.ConstructorGuard
}

func NewDeleteDepartmentCommand(caller kernel.Caller, departmentID int64) (DeleteDepartmentCommand, error) {
	v := errs.NewValidationError()
	requiredID(v, "id", departmentID)
	if err := v.OrNil(); err != nil {
		return DeleteDepartmentCommand{}, err
	}

	return DeleteDepartmentCommand{
		caller:       caller,
		departmentID: departmentID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteDepartmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDepartmentCommandIsNotConstructed)
}

func (c DeleteDepartmentCommand) Caller() kernel.Caller { return c.caller }
func (c DeleteDepartmentCommand) DepartmentID() int64   { return c.departmentID }
