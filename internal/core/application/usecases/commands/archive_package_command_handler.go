package commands

import (
	"context"
	"errors"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/services"
	"parcels/internal/pkg/errs"
)

type ArchivePackageCommandHandler struct {
	uowFactory PackageUoWFactory
	policy     services.AccessPolicy
	now        Clock
}

func NewArchivePackageCommandHandler(
	uowFactory PackageUoWFactory,
	policy services.AccessPolicy,
	now Clock,
) ArchivePackageCommandHandler {
	return ArchivePackageCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		now:        now,
	}
}

// Handle archives the package. Archiving an already archived package is rejected
// and leaves its archivedAt untouched.
func (h ArchivePackageCommandHandler) Handle(ctx context.Context, cmd ArchivePackageCommand) (parcel.View, error) {
	if err := cmd.Validate(); err != nil {
		return parcel.View{}, err
	}

	if err := h.policy.Authorize(cmd.Caller(), services.OpPackageArchive); err != nil {
		return parcel.View{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return parcel.View{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packageRepo := uow.PackageRepository()
	aggregate, err := packageRepo.Get(ctx, cmd.PackageID())
	if err != nil {
		return parcel.View{}, err
	}

	if err = aggregate.Archive(h.now()); err != nil {
		if errors.Is(err, parcel.ErrAlreadyArchived) {
			return parcel.View{}, errs.NewFieldError("status", parcel.ErrAlreadyArchived.Error())
		}
		return parcel.View{}, err
	}

	if err = packageRepo.Update(ctx, aggregate); err != nil {
		return parcel.View{}, err
	}

	view, err := packageRepo.GetView(ctx, aggregate.ID())
	if err != nil {
		return parcel.View{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return parcel.View{}, err
	}

	return view, nil
}
