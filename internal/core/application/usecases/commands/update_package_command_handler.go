package commands

import (
	"context"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/services"
	"parcels/internal/pkg/errs"
)

type UpdatePackageCommandHandler struct {
	uowFactory PackageUoWFactory
	policy     services.AccessPolicy
	now        Clock
}

func NewUpdatePackageCommandHandler(
	uowFactory PackageUoWFactory,
	policy services.AccessPolicy,
	now Clock,
) UpdatePackageCommandHandler {
	return UpdatePackageCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		now:        now,
	}
}

// Handle moves the package to Modified. It fails with errs.ErrObjectNotFound for an
// unknown id and with a validation error for a missing category or an archived package.
func (h UpdatePackageCommandHandler) Handle(ctx context.Context, cmd UpdatePackageCommand) (parcel.View, error) {
	if err := cmd.Validate(); err != nil {
		return parcel.View{}, err
	}

	if err := h.policy.Authorize(cmd.Caller(), services.OpPackageUpdate); err != nil {
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

	v := errs.NewValidationError()
	if err = requireExisting(ctx, v, "categoryId", "category", cmd.CategoryID(), uow.CategoryRepository().Exists); err != nil {
		return parcel.View{}, err
	}
	if err = v.OrNil(); err != nil {
		return parcel.View{}, err
	}

	if err = aggregate.Modify(cmd.CategoryID(), cmd.Description(), h.now()); err != nil {
		return parcel.View{}, errs.NewFieldError("status", err.Error())
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
