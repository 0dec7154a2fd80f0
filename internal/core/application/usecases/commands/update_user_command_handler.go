package commands

import (
	"context"
	"errors"

	"parcels/internal/core/domain/model/user"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
)

// UpdateUserCommandHandler edits a user by id. The target's current role decides
// whether the caller may edit it at all; a new role is checked like a creation.
// Admin accounts cannot be edited through this path by anyone.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
	policy     services.AccessPolicy
	hasher     ports.PasswordHasher
}

func NewUpdateUserCommandHandler(
	uowFactory UserUoWFactory,
	policy services.AccessPolicy,
	hasher ports.PasswordHasher,
) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		hasher:     hasher,
	}
}

func (h UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	target, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	in := cmd.Input()
	if err = errors.Join(
		h.policy.Authorize(cmd.Caller(), services.UserUpdateOperation(target.Role())),
		h.authorizeRoleChange(cmd, target),
	); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(h.hasher, in.Password)
	if err != nil {
		return nil, err
	}

	if err = applyProfile(target, in.FirstName, in.LastName, in.Email, in.PhoneNumber, passwordHash); err != nil {
		return nil, err
	}
	if err = target.ChangeRole(in.Role); err != nil {
		return nil, errs.NewFieldError("password", "password is required for "+in.Role.String()+" accounts")
	}

	if err = userRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}

func (h UpdateUserCommandHandler) authorizeRoleChange(cmd UpdateUserCommand, target *user.User) error {
	if cmd.Input().Role == target.Role() {
		return nil
	}
	return h.policy.Authorize(cmd.Caller(), services.UserCreateOperation(cmd.Input().Role))
}

func applyProfile(
	target *user.User,
	firstName, lastName string,
	email *string,
	phoneNumber string,
	passwordHash *string,
) error {
	return errors.Join(
		target.UpdateProfile(firstName, lastName, email, phoneNumber),
		target.ChangePassword(passwordHash),
	)
}
