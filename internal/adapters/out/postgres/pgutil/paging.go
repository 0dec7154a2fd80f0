package pgutil

import (
	"context"

	"parcels/internal/pkg/pagination"

	"gorm.io/gorm"
)

// FindPage counts the T rows matched by scopes and loads the window described by
// page. Both statements start from a fresh session so the count never leaks into
// the select.
func FindPage[T any](
	ctx context.Context,
	db *gorm.DB,
	page pagination.Request,
	order string,
	scopes ...func(*gorm.DB) *gorm.DB,
) (int64, []T, error) {
	if err := page.Validate(); err != nil {
		return 0, nil, err
	}

	var total int64
	if err := db.WithContext(ctx).Model(new(T)).Scopes(scopes...).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	rows := make([]T, 0, page.Limit())
	if total == 0 || int64(page.Offset()) >= total {
		return total, rows, nil
	}

	if err := db.WithContext(ctx).
		Scopes(scopes...).
		Order(order).
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&rows).Error; err != nil {
		return 0, nil, err
	}

	return total, rows, nil
}
