package commands

import (
	"context"

	"parcels/internal/core/domain/model/department"
	"parcels/internal/core/domain/services"
)

// DepartmentCommandHandler serves create, update and delete for departments.
// A duplicate number is reported by the repository as a unique constraint violation.
type DepartmentCommandHandler struct {
	uowFactory DepartmentUoWFactory
	policy     services.AccessPolicy
}

func NewDepartmentCommandHandler(uowFactory DepartmentUoWFactory, policy services.AccessPolicy) DepartmentCommandHandler {
	return DepartmentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h DepartmentCommandHandler) Create(ctx context.Context, cmd CreateDepartmentCommand) (*department.Department, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(cmd.Caller(), services.OpDepartmentCreate); err != nil {
		return nil, err
	}

	aggregate, err := department.NewDepartment(cmd.Number(), cmd.FullAddress())
	if err != nil {
		return nil, err
	}

	err = h.inTx(ctx, func(uow DepartmentUoW) error {
		return uow.DepartmentRepository().Add(ctx, aggregate)
	})
	if err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h DepartmentCommandHandler) Update(ctx context.Context, cmd UpdateDepartmentCommand) (*department.Department, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(cmd.Caller(), services.OpDepartmentUpdate); err != nil {
		return nil, err
	}

	var aggregate *department.Department
	err := h.inTx(ctx, func(uow DepartmentUoW) error {
		repo := uow.DepartmentRepository()

		var err error
		if aggregate, err = repo.Get(ctx, cmd.DepartmentID()); err != nil {
			return err
		}
		if err = aggregate.Update(cmd.Number(), cmd.FullAddress()); err != nil {
			return err
		}
		return repo.Update(ctx, aggregate)
	})
	if err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h DepartmentCommandHandler) Delete(ctx context.Context, cmd DeleteDepartmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.Caller(), services.OpDepartmentDelete); err != nil {
		return err
	}

	return h.inTx(ctx, func(uow DepartmentUoW) error {
		return uow.DepartmentRepository().Delete(ctx, cmd.DepartmentID())
	})
}

func (h DepartmentCommandHandler) inTx(ctx context.Context, fn func(uow DepartmentUoW) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
