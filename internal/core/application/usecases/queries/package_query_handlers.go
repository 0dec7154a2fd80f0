package queries

import (
	"context"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/pagination"
)

// PackageQueryHandler serves single package reads and listings. Clients only ever
// see packages they send or receive: a foreign package is forbidden, and listings
// are filtered in the query so that totals count the client's packages only.
type PackageQueryHandler struct {
	packages ports.PackageRepository
	policy   services.AccessPolicy
}

func NewPackageQueryHandler(packages ports.PackageRepository, policy services.AccessPolicy) PackageQueryHandler {
	return PackageQueryHandler{
		packages: packages,
		policy:   policy,
	}
}

func (h PackageQueryHandler) Get(ctx context.Context, q GetPackageQuery) (parcel.View, error) {
	if err := q.Validate(); err != nil {
		return parcel.View{}, err
	}

	if err := h.policy.Authorize(q.Caller(), services.OpPackageRead); err != nil {
		return parcel.View{}, err
	}

	view, err := h.packages.GetView(ctx, q.PackageID())
	if err != nil {
		return parcel.View{}, err
	}

	if err = h.policy.AuthorizeOwned(q.Caller(), services.OpPackageRead, view.IsParty); err != nil {
		return parcel.View{}, err
	}

	return view, nil
}

func (h PackageQueryHandler) List(ctx context.Context, q ListPackagesQuery) (pagination.Page[parcel.View], error) {
	if err := q.Validate(); err != nil {
		return pagination.Page[parcel.View]{}, err
	}

	caller := q.Caller()
	if err := h.policy.Authorize(caller, services.OpPackageRead); err != nil {
		return pagination.Page[parcel.View]{}, err
	}

	var filter ports.PackageFilter
	if h.policy.RestrictedToOwn(caller, services.OpPackageRead) {
		filter.PartyUserID = &caller.ID
	}

	return h.packages.List(ctx, filter, q.Page())
}
