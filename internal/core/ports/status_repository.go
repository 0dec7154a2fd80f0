package ports

import (
	"context"

	"parcels/internal/core/domain/model/parcel"
)

// StatusRepository reads the seeded package_statuses table.
type StatusRepository interface {
	List(ctx context.Context) ([]parcel.Status, error)
}

// StatusCache keeps the status list between requests. Get reports a miss with ok=false.
type StatusCache interface {
	Get(ctx context.Context) (statuses []parcel.Status, ok bool, err error)
	Set(ctx context.Context, statuses []parcel.Status) error
}
