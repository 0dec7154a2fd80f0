package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrArchivePackageCommandIsNotConstructed = errors.New(
	"ArchivePackageCommand must be created via NewArchivePackageCommand constructor",
)

type ArchivePackageCommand struct {
	caller    kernel.Caller
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

func NewArchivePackageCommand(caller kernel.Caller, packageID kernel.UUID) (ArchivePackageCommand, error) {
	if err := packageID.Validate(); err != nil {
		return ArchivePackageCommand{}, errs.NewFieldError("id", "id is required")
	}

	return ArchivePackageCommand{
		caller:    caller,
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ArchivePackageCommand) Validate() error {
	return c.guard.Validate(ErrArchivePackageCommandIsNotConstructed)
}

func (c ArchivePackageCommand) Caller() kernel.Caller {
	return c.caller
}

func (c ArchivePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}
