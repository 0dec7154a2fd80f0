package ports

import (
	"context"

	"parcels/internal/core/domain/model/department"
	"parcels/internal/pkg/pagination"
)

// DepartmentRepository persists departments. A duplicate number surfaces as
// errs.UniqueConstraintViolationError.
type DepartmentRepository interface {
	Add(ctx context.Context, aggregate *department.Department) error
	Update(ctx context.Context, aggregate *department.Department) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*department.Department, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, page pagination.Request) (pagination.Page[*department.Department], error)
}
