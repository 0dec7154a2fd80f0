package commands

import (
	"context"
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/services"
	"parcels/internal/pkg/errs"
)

// CreatePackageCommandHandler checks that every referenced row exists and inserts
// the package in a single transaction.
type CreatePackageCommandHandler struct {
	uowFactory PackageUoWFactory
	policy     services.AccessPolicy
	now        Clock
}

func NewCreatePackageCommandHandler(
	uowFactory PackageUoWFactory,
	policy services.AccessPolicy,
	now Clock,
) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		now:        now,
	}
}

// Handle returns the stored package with its references resolved.
func (h CreatePackageCommandHandler) Handle(ctx context.Context, cmd CreatePackageCommand) (parcel.View, error) {
	if err := cmd.Validate(); err != nil {
		return parcel.View{}, err
	}

	if err := h.policy.Authorize(cmd.Caller(), services.OpPackageCreate); err != nil {
		return parcel.View{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return parcel.View{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := h.checkReferences(ctx, uow, cmd.Details()); err != nil {
		return parcel.View{}, err
	}

	aggregate, err := parcel.NewPackage(kernel.NewUUID(), cmd.Details(), h.now())
	if err != nil {
		return parcel.View{}, err
	}

	packageRepo := uow.PackageRepository()
	if err = packageRepo.Add(ctx, aggregate); err != nil {
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

func (h CreatePackageCommandHandler) checkReferences(ctx context.Context, uow PackageUoW, d parcel.Details) error {
	v := errs.NewValidationError()
	users := uow.UserRepository()
	departments := uow.DepartmentRepository()

	if err := errors.Join(
		requireExisting(ctx, v, "categoryId", "category", d.CategoryID, uow.CategoryRepository().Exists),
		requireExisting(ctx, v, "senderUserId", "user", d.SenderUserID, users.Exists),
		requireExisting(ctx, v, "receiverUserId", "user", d.ReceiverUserID, users.Exists),
		requireExisting(ctx, v, "senderDepartmentId", "department", d.SenderDepartmentID, departments.Exists),
		requireExisting(ctx, v, "receiverDepartmentId", "department", d.ReceiverDepartmentID, departments.Exists),
	); err != nil {
		return err
	}

	return v.OrNil()
}
