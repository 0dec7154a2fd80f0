package commands

import (
	"context"

	"parcels/internal/core/domain/model/user"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"
)

type UpdateMeCommandHandler struct {
	uowFactory UserUoWFactory
	policy     services.AccessPolicy
	hasher     ports.PasswordHasher
}

func NewUpdateMeCommandHandler(
	uowFactory UserUoWFactory,
	policy services.AccessPolicy,
	hasher ports.PasswordHasher,
) UpdateMeCommandHandler {
	return UpdateMeCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		hasher:     hasher,
	}
}

// Handle updates the caller's own account. It fails with errs.ErrObjectNotFound
// when the account behind a still-valid token has been deleted.
func (h UpdateMeCommandHandler) Handle(ctx context.Context, cmd UpdateMeCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(cmd.Caller(), services.OpUserMe); err != nil {
		return nil, err
	}

	in := cmd.Input()
	passwordHash, err := hashPassword(h.hasher, in.Password)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	me, err := userRepo.Get(ctx, cmd.Caller().ID)
	if err != nil {
		return nil, err
	}

	if err = applyProfile(me, in.FirstName, in.LastName, in.Email, in.PhoneNumber, passwordHash); err != nil {
		return nil, err
	}

	if err = userRepo.Update(ctx, me); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return me, nil
}
