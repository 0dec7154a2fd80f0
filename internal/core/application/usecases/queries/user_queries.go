package queries

import (
	"context"
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
	"parcels/internal/pkg/pagination"
)

var (
	ErrGetUserQueryIsNotConstructed = errors.New(
		"GetUserQuery must be created via NewGetUserQuery or NewGetMeQuery constructor",
	)
	ErrListUsersQueryIsNotConstructed = errors.New(
		"ListUsersQuery must be created via NewListUsersQuery constructor",
	)
)

// GetUserQuery reads one user, either by id or the caller's own account.
type GetUserQuery struct {
	caller kernel.Caller
	userID int64
	me     bool

	guard guard.ConstructorGuard
}

func NewGetUserQuery(caller kernel.Caller, userID int64) (GetUserQuery, error) {
	if userID <= 0 {
		return GetUserQuery{}, errs.NewFieldError("id", "id must be a positive id")
	}
	return GetUserQuery{caller: caller, userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func NewGetMeQuery(caller kernel.Caller) GetUserQuery {
	return GetUserQuery{caller: caller, userID: caller.ID, me: true, guard: guard.NewConstructorGuard()}
}

func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

type ListUsersQuery struct {
	caller kernel.Caller
	page   pagination.Request

	guard guard.ConstructorGuard
}

func NewListUsersQuery(caller kernel.Caller, page pagination.Request) (ListUsersQuery, error) {
	if err := page.Validate(); err != nil {
		return ListUsersQuery{}, err
	}
	return ListUsersQuery{caller: caller, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

type UserQueryHandler struct {
	users  ports.UserRepository
	policy services.AccessPolicy
}

func NewUserQueryHandler(users ports.UserRepository, policy services.AccessPolicy) UserQueryHandler {
	return UserQueryHandler{users: users, policy: policy}
}

func (h UserQueryHandler) Get(ctx context.Context, q GetUserQuery) (*user.User, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	op := services.OpUserRead
	if q.me {
		op = services.OpUserMe
	}
	if err := h.policy.Authorize(q.caller, op); err != nil {
		return nil, err
	}

	return h.users.Get(ctx, q.userID)
}

func (h UserQueryHandler) List(ctx context.Context, q ListUsersQuery) (pagination.Page[*user.User], error) {
	if err := q.Validate(); err != nil {
		return pagination.Page[*user.User]{}, err
	}

	if err := h.policy.Authorize(q.caller, services.OpUserRead); err != nil {
		return pagination.Page[*user.User]{}, err
	}

	return h.users.List(ctx, q.page)
}
