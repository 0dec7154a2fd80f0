// Package queries contains read operations. Each query is validated by its
// constructor; each handler checks the access policy and reads through the ports
// without opening a transaction.
package queries

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
	"parcels/internal/pkg/pagination"
)

var (
	ErrGetPackageQueryIsNotConstructed = errors.New(
		"GetPackageQuery must be created via NewGetPackageQuery constructor",
	)
	ErrListPackagesQueryIsNotConstructed = errors.New(
		"ListPackagesQuery must be created via NewListPackagesQuery constructor",
	)
)

type GetPackageQuery struct {
	caller    kernel.Caller
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPackageQuery(caller kernel.Caller, packageID kernel.UUID) (GetPackageQuery, error) {
	if err := packageID.Validate(); err != nil {
		return GetPackageQuery{}, errs.NewFieldError("id", "id is required")
	}
	return GetPackageQuery{caller: caller, packageID: packageID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPackageQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageQueryIsNotConstructed)
}

func (q GetPackageQuery) Caller() kernel.Caller  { return q.caller }
func (q GetPackageQuery) PackageID() kernel.UUID { return q.packageID }

// ListPackagesQuery pages over the packages visible to the caller.
type ListPackagesQuery struct {
	caller kernel.Caller
	page   pagination.Request

	guard guard.ConstructorGuard
}

func NewListPackagesQuery(caller kernel.Caller, page pagination.Request) (ListPackagesQuery, error) {
	if err := page.Validate(); err != nil {
		return ListPackagesQuery{}, err
	}
	return ListPackagesQuery{caller: caller, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListPackagesQuery) Validate() error {
	return q.guard.Validate(ErrListPackagesQueryIsNotConstructed)
}

func (q ListPackagesQuery) Caller() kernel.Caller    { return q.caller }
func (q ListPackagesQuery) Page() pagination.Request { return q.page }
