// Package pagination turns page/limit requests into offset windows and computes
// the totals reported alongside every paged list.
package pagination

import (
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrRequestIsNotConstructed = errs.NewValueIsRequiredError(
	"pagination request must be created via NewRequest")

// Request is a validated page/limit pair. Both values are 1-based and required.
type Request struct {
	page  int
	limit int
	guard guard.ConstructorGuard
}

// NewRequest validates page and limit. A zero value counts as missing and is
// reported as a violation rather than clamped.
func NewRequest(page, limit int) (Request, error) {
	violations := errs.NewValidationError()

	switch {
	case page == 0:
		violations.Add("page", "page is required")
	case page < 1:
		violations.Add("page", "page must be greater than or equal to 1")
	}

	switch {
	case limit == 0:
		violations.Add("limit", "limit is required")
	case limit < 1:
		violations.Add("limit", "limit must be greater than or equal to 1")
	}

	if err := violations.OrNil(); err != nil {
		return Request{}, err
	}

	return Request{page: page, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (r Request) Validate() error {
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

func (r Request) Page() int {
	return r.page
}

func (r Request) Limit() int {
	return r.limit
}

// Offset is the number of rows preceding the requested page.
func (r Request) Offset() int {
	return (r.page - 1) * r.limit
}

// Page is one window of a list together with the size of the whole list.
type Page[T any] struct {
	TotalCount int64
	TotalPages int64
	Items      []T
}

// Paginate assembles a page from the window of items fetched at r.Offset() and
// the total number of rows the caller is allowed to see. A page past the end
// carries no items but still reports accurate totals.
func Paginate[T any](r Request, totalCount int64, items []T) Page[T] {
	if items == nil {
		items = make([]T, 0)
	}

	return Page[T]{
		TotalCount: totalCount,
		TotalPages: TotalPages(totalCount, r.limit),
		Items:      items,
	}
}

// TotalPages is ceil(totalCount/limit).
func TotalPages(totalCount int64, limit int) int64 {
	if limit <= 0 || totalCount <= 0 {
		return 0
	}
	l := int64(limit)
	return (totalCount + l - 1) / l
}

// Map converts the items of a page while keeping its totals.
func Map[T, R any](p Page[T], fn func(T) R) Page[R] {
	items := make([]R, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, fn(item))
	}
	return Page[R]{
		TotalCount: p.TotalCount,
		TotalPages: p.TotalPages,
		Items:      items,
	}
}
