package commands

import (
	"errors"

	"parcels/internal/core/domain/model/category"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	ErrCreateCategoryCommandIsNotConstructed = errors.New(
		"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
	)
	ErrUpdateCategoryCommandIsNotConstructed = errors.New(
		"UpdateCategoryCommand must be created via NewUpdateCategoryCommand constructor",
	)
	ErrDeleteCategoryCommandIsNotConstructed = errors.New(
		"DeleteCategoryCommand must be created via NewDeleteCategoryCommand constructor",
	)
)

type CreateCategoryCommand struct {
	caller kernel.Caller
	name   string

	guard guard.ConstructorGuard
}

func NewCreateCategoryCommand(caller kernel.Caller, name string) (CreateCategoryCommand, error) {
	v := errs.NewValidationError()
	name = requiredString(v, "name", name, category.MaxNameLength)
	if err := v.OrNil(); err != nil {
		return CreateCategoryCommand{}, err
	}

	return CreateCategoryCommand{caller: caller, name: name, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

func (c CreateCategoryCommand) Caller() kernel.Caller { return c.caller }
func (c CreateCategoryCommand) Name() string          { return c.name }

type UpdateCategoryCommand struct {
	caller     kernel.Caller
	categoryID int64
	name       string

	guard guard.ConstructorGuard
}

func NewUpdateCategoryCommand(caller kernel.Caller, categoryID int64, name string) (UpdateCategoryCommand, error) {
	v := errs.NewValidationError()
	requiredID(v, "id", categoryID)
	name = requiredString(v, "name", name, category.MaxNameLength)
	if err := v.OrNil(); err != nil {
		return UpdateCategoryCommand{}, err
	}

	return UpdateCategoryCommand{
		caller:     caller,
		categoryID: categoryID,
		name:       name,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCategoryCommandIsNotConstructed)
}

func (c UpdateCategoryCommand) Caller() kernel.Caller { return c.caller }
func (c UpdateCategoryCommand) CategoryID() int64     { return c.categoryID }
func (c UpdateCategoryCommand) Name() string          { return c.name }

type DeleteCategoryCommand struct {
	caller     kernel.Caller
	categoryID int64

	guard guard.ConstructorGuard
}

func NewDeleteCategoryCommand(caller kernel.Caller, categoryID int64) (DeleteCategoryCommand, error) {
	v := errs.NewValidationError()
	requiredID(v, "id", categoryID)
	if err := v.OrNil(); err != nil {
		return DeleteCategoryCommand{}, err
	}

	return DeleteCategoryCommand{caller: caller, categoryID: categoryID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteCategoryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCategoryCommandIsNotConstructed)
}

func (c DeleteCategoryCommand) Caller() kernel.Caller { return c.caller }
func (c DeleteCategoryCommand) CategoryID() int64     { return c.categoryID }
