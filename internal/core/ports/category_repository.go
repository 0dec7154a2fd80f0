package ports

import (
	"context"

	"parcels/internal/core/domain/model/category"
	"parcels/internal/pkg/pagination"
)

// CategoryRepository persists package categories. A duplicate name surfaces as
// errs.UniqueConstraintViolationError.
type CategoryRepository interface {
	Add(ctx context.Context, aggregate *category.Category) error
	Update(ctx context.Context, aggregate *category.Category) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*category.Category, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, page pagination.Request) (pagination.Page[*category.Category], error)
}
