package commands

import (
	"context"

	"parcels/internal/core/domain/model/category"
	"parcels/internal/core/domain/services"
)

// CategoryCommandHandler serves create, rename and delete for package categories.
type CategoryCommandHandler struct {
	uowFactory CategoryUoWFactory
	policy     services.AccessPolicy
}

func NewCategoryCommandHandler(uowFactory CategoryUoWFactory, policy services.AccessPolicy) CategoryCommandHandler {
	return CategoryCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h CategoryCommandHandler) Create(ctx context.Context, cmd CreateCategoryCommand) (*category.Category, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(cmd.Caller(), services.OpCategoryCreate); err != nil {
		return nil, err
	}

	aggregate, err := category.NewCategory(cmd.Name())
	if err != nil {
		return nil, err
	}

	err = h.inTx(ctx, func(uow CategoryUoW) error {
		return uow.CategoryRepository().Add(ctx, aggregate)
	})
	if err != nil {
		return nil, err
	}

	return aggregate, nil
}

// Update renames the category. Renaming to the current name succeeds without a write,
// so it can never collide with its own unique constraint.
func (h CategoryCommandHandler) Update(ctx context.Context, cmd UpdateCategoryCommand) (*category.Category, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(cmd.Caller(), services.OpCategoryUpdate); err != nil {
		return nil, err
	}

	var aggregate *category.Category
	err := h.inTx(ctx, func(uow CategoryUoW) error {
		repo := uow.CategoryRepository()

		var err error
		if aggregate, err = repo.Get(ctx, cmd.CategoryID()); err != nil {
			return err
		}

		changed, err := aggregate.Rename(cmd.Name())
		if err != nil || !changed {
			return err
		}
		return repo.Update(ctx, aggregate)
	})
	if err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h CategoryCommandHandler) Delete(ctx context.Context, cmd DeleteCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.Caller(), services.OpCategoryDelete); err != nil {
		return err
	}

	return h.inTx(ctx, func(uow CategoryUoW) error {
		return uow.CategoryRepository().Delete(ctx, cmd.CategoryID())
	})
}

func (h CategoryCommandHandler) inTx(ctx context.Context, fn func(uow CategoryUoW) error) error {
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
