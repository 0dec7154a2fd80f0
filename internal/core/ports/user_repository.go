// Package ports defines the boundaries between the application core and its adapters:
// repositories, the unit of work, and the security and cache collaborators.
package ports

import (
	"context"

	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/pagination"
)

// UserRepository persists user aggregates. Lookups that miss return
// errs.ObjectNotFoundError; duplicate email or phone number surfaces as
// errs.UniqueConstraintViolationError.
type UserRepository interface {
	// Add inserts the user and assigns the generated id back to it.
	Add(ctx context.Context, aggregate *user.User) error
	Update(ctx context.Context, aggregate *user.User) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*user.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// List pages over every user ordered by id.
	List(ctx context.Context, page pagination.Request) (pagination.Page[*user.User], error)
}
