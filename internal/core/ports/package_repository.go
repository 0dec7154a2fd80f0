package ports

import (
	"context"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/pagination"
)

// PackageFilter narrows a package listing. A nil PartyUserID lists every package.
type PackageFilter struct {
	PartyUserID *int64
}

// PackageRepository persists package aggregates and serves the hydrated views.
type PackageRepository interface {
	Add(ctx context.Context, aggregate *parcel.Package) error
	Update(ctx context.Context, aggregate *parcel.Package) error
	Get(ctx context.Context, id kernel.UUID) (*parcel.Package, error)

	// GetView returns the package with status, category, parties and departments resolved.
	GetView(ctx context.Context, id kernel.UUID) (parcel.View, error)

	// List pages over the packages matching filter, newest first. TotalCount counts
	// the filtered set, not the whole table.
	List(ctx context.Context, filter PackageFilter, page pagination.Request) (pagination.Page[parcel.View], error)

	// FindStale returns up to limit non-archived packages whose last change is before cutoff.
	FindStale(ctx context.Context, cutoff time.Time, limit int) ([]*parcel.Package, error)
}
