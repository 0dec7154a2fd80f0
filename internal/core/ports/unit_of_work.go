package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command so transactions never
// leak between requests.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained after Begin
// run inside the transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	// Commit returns an error if no transaction is active.
	Commit(ctx context.Context) error
	// Rollback is safe to defer; it returns an error once the transaction has ended.
	Rollback(ctx context.Context) error

	UserRepository() UserRepository
	DepartmentRepository() DepartmentRepository
	CategoryRepository() CategoryRepository
	PackageRepository() PackageRepository
}
