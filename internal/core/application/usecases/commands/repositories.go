// Package commands contains the operations that change system state. Every command
// is validated in its constructor, collecting all violated fields, and every handler
// checks the access policy before touching storage and runs inside one transaction.
package commands

import (
	"context"
	"time"

	"parcels/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each group of handlers needs.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	DepartmentRepoFactory interface {
		DepartmentRepository() ports.DepartmentRepository
	}

	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	DepartmentUoW interface {
		TxManager
		DepartmentRepoFactory
	}

	DepartmentUoWFactory interface {
		Create() DepartmentUoW
	}

	CategoryUoW interface {
		TxManager
		CategoryRepoFactory
	}

	CategoryUoWFactory interface {
		Create() CategoryUoW
	}

	// PackageUoW reaches every repository a package references so that existence
	// checks and the write share one transaction.
	PackageUoW interface {
		TxManager
		PackageRepoFactory
		CategoryRepoFactory
		UserRepoFactory
		DepartmentRepoFactory
	}

	PackageUoWFactory interface {
		Create() PackageUoW
	}
)

// Clock returns the current time. Handlers that stamp lifecycle timestamps take one
// so tests can pin it.
type Clock func() time.Time
