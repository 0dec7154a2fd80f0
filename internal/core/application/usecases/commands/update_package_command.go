package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrUpdatePackageCommandIsNotConstructed = errors.New(
	"UpdatePackageCommand must be created via NewUpdatePackageCommand constructor",
)

// UpdatePackageCommand changes the category and description of a package. Parties,
// departments and amounts are fixed at creation and cannot be changed here.
type UpdatePackageCommand struct {
	caller      kernel.Caller
	packageID   kernel.UUID
	categoryID  int64
	description *string

	guard guard.ConstructorGuard
}

func NewUpdatePackageCommand(
	caller kernel.Caller,
	packageID kernel.UUID,
	categoryID int64,
	description *string,
) (UpdatePackageCommand, error) {
	v := errs.NewValidationError()

	v.Collect("id", packageID.Validate())
	cmd := UpdatePackageCommand{
		caller:      caller,
		packageID:   packageID,
		categoryID:  requiredID(v, "categoryId", categoryID),
		description: optionalString(v, "description", description, parcel.MaxDescriptionLength),
	}

	if err := v.OrNil(); err != nil {
		return UpdatePackageCommand{}, err
	}

	cmd.guard = guard.NewConstructorGuard()
	return cmd, nil
}

func (c UpdatePackageCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePackageCommandIsNotConstructed)
}

func (c UpdatePackageCommand) Caller() kernel.Caller {
	return c.caller
}

func (c UpdatePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

func (c UpdatePackageCommand) CategoryID() int64 {
	return c.categoryID
}

func (c UpdatePackageCommand) Description() *string {
	return c.description
}
