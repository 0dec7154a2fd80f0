package commands

import (
	"context"

	"parcels/internal/core/domain/services"
)

// DeleteUserCommandHandler removes an account. Managers may delete clients only.
type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
	policy     services.AccessPolicy
}

func NewDeleteUserCommandHandler(uowFactory UserUoWFactory, policy services.AccessPolicy) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	target, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = h.policy.Authorize(cmd.Caller(), services.UserDeleteOperation(target.Role())); err != nil {
		return err
	}

	if err = userRepo.Delete(ctx, target.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
