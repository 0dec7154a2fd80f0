package commands

import (
	"context"

	"parcels/internal/core/domain/model/user"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"
)

// CreateUserCommandHandler registers an account. Admins may create any role,
// managers only clients.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
	policy     services.AccessPolicy
	hasher     ports.PasswordHasher
}

func NewCreateUserCommandHandler(
	uowFactory UserUoWFactory,
	policy services.AccessPolicy,
	hasher ports.PasswordHasher,
) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		hasher:     hasher,
	}
}

func (h CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	in := cmd.Input()
	if err := h.policy.Authorize(cmd.Caller(), services.UserCreateOperation(in.Role)); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(h.hasher, in.Password)
	if err != nil {
		return nil, err
	}

	aggregate, err := user.NewUser(in.Role, in.FirstName, in.LastName, in.Email, in.PhoneNumber, passwordHash)
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

	if err = uow.UserRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func hashPassword(hasher ports.PasswordHasher, password *string) (*string, error) {
	if password == nil {
		return nil, nil
	}
	hash, err := hasher.Hash(*password)
	if err != nil {
		return nil, err
	}
	return &hash, nil
}
