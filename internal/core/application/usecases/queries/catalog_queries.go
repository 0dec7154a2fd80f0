package queries

import (
	"context"
	"errors"

	"parcels/internal/core/domain/model/category"
	"parcels/internal/core/domain/model/department"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
	"parcels/internal/pkg/pagination"
)

var ErrCatalogQueryIsNotConstructed = errors.New(
	"CatalogQuery must be created via NewGetByIDQuery or NewListQuery constructor",
)

// CatalogQuery addresses departments and categories, which share the same read
// surface: get by id or list a page.
type CatalogQuery struct {
	caller kernel.Caller
	id     int64
	page   pagination.Request

	guard guard.ConstructorGuard
}

func NewGetByIDQuery(caller kernel.Caller, id int64) (CatalogQuery, error) {
	if id <= 0 {
		return CatalogQuery{}, errs.NewFieldError("id", "id must be a positive id")
	}
	return CatalogQuery{caller: caller, id: id, guard: guard.NewConstructorGuard()}, nil
}

func NewListQuery(caller kernel.Caller, page pagination.Request) (CatalogQuery, error) {
	if err := page.Validate(); err != nil {
		return CatalogQuery{}, err
	}
	return CatalogQuery{caller: caller, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q CatalogQuery) Validate() error {
	return q.guard.Validate(ErrCatalogQueryIsNotConstructed)
}

type DepartmentQueryHandler struct {
	departments ports.DepartmentRepository
	policy      services.AccessPolicy
}

func NewDepartmentQueryHandler(departments ports.DepartmentRepository, policy services.AccessPolicy) DepartmentQueryHandler {
	return DepartmentQueryHandler{departments: departments, policy: policy}
}

func (h DepartmentQueryHandler) Get(ctx context.Context, q CatalogQuery) (*department.Department, error) {
	if err := errors.Join(q.Validate(), h.policy.Authorize(q.caller, services.OpDepartmentRead)); err != nil {
		return nil, err
	}
	return h.departments.Get(ctx, q.id)
}

func (h DepartmentQueryHandler) List(ctx context.Context, q CatalogQuery) (pagination.Page[*department.Department], error) {
	if err := errors.Join(q.Validate(), h.policy.Authorize(q.caller, services.OpDepartmentRead)); err != nil {
		return pagination.Page[*department.Department]{}, err
	}
	return h.departments.List(ctx, q.page)
}

type CategoryQueryHandler struct {
	categories ports.CategoryRepository
	policy     services.AccessPolicy
}

func NewCategoryQueryHandler(categories ports.CategoryRepository, policy services.AccessPolicy) CategoryQueryHandler {
	return CategoryQueryHandler{categories: categories, policy: policy}
}

func (h CategoryQueryHandler) Get(ctx context.Context, q CatalogQuery) (*category.Category, error) {
	if err := errors.Join(q.Validate(), h.policy.Authorize(q.caller, services.OpCategoryRead)); err != nil {
		return nil, err
	}
	return h.categories.Get(ctx, q.id)
}

func (h CategoryQueryHandler) List(ctx context.Context, q CatalogQuery) (pagination.Page[*category.Category], error) {
	if err := errors.Join(q.Validate(), h.policy.Authorize(q.caller, services.OpCategoryRead)); err != nil {
		return pagination.Page[*category.Category]{}, err
	}
	return h.categories.List(ctx, q.page)
}
