package packagerepo

import (
	"context"
	"errors"
	"time"

	"parcels/internal/adapters/out/postgres/pgutil"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const viewColumns = `p.*,
	c.name AS category_name,
	su.first_name AS sender_first_name, su.last_name AS sender_last_name,
	su.email AS sender_email, su.phone_number AS sender_phone_number,
	ru.first_name AS receiver_first_name, ru.last_name AS receiver_last_name,
	ru.email AS receiver_email, ru.phone_number AS receiver_phone_number,
	sd.number AS sender_department_number, sd.full_address AS sender_department_full_address,
	rd.number AS receiver_department_number, rd.full_address AS receiver_department_full_address`

// GormPackageRepository implements ports.PackageRepository using GORM.
type GormPackageRepository struct {
	db *gorm.DB
}

func NewGormPackageRepository(db *gorm.DB) *GormPackageRepository {
	return &GormPackageRepository{db: db}
}

// Add inserts a new package. Dangling references surface as errs.ReferenceViolationError.
func (r *GormPackageRepository) Add(ctx context.Context, aggregate *parcel.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.Translate(err)
	}

	return nil
}

// Update writes the whole row, so cleared timestamps and descriptions become NULL.
func (r *GormPackageRepository) Update(ctx context.Context, aggregate *parcel.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PackageDTO{}).Where("id = ?", dto.ID).Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		return pgutil.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("package", aggregate.ID().String())
	}

	return nil
}

func (r *GormPackageRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PackageDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormPackageRepository) GetView(ctx context.Context, id kernel.UUID) (parcel.View, error) {
	if err := id.Validate(); err != nil {
		return parcel.View{}, err
	}

	var row viewRow
	if err := r.views(ctx).Where("p.id = ?", id.Bytes()).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return parcel.View{}, errs.NewObjectNotFoundError("package", id.String())
		}
		return parcel.View{}, err
	}

	return row.toView()
}

func (r *GormPackageRepository) List(
	ctx context.Context,
	filter ports.PackageFilter,
	page pagination.Request,
) (pagination.Page[parcel.View], error) {
	if err := page.Validate(); err != nil {
		return pagination.Page[parcel.View]{}, err
	}

	var total int64
	if err := r.db.WithContext(ctx).Table("packages AS p").Scopes(byFilter(filter)).Count(&total).Error; err != nil {
		return pagination.Page[parcel.View]{}, err
	}

	views := make([]parcel.View, 0, page.Limit())
	if total == 0 || int64(page.Offset()) >= total {
		return pagination.Paginate(page, total, views), nil
	}

	var rows []viewRow
	if err := r.views(ctx).
		Scopes(byFilter(filter)).
		Order("p.created_at DESC, p.id").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&rows).Error; err != nil {
		return pagination.Page[parcel.View]{}, err
	}

	for _, row := range rows {
		view, err := row.toView()
		if err != nil {
			return pagination.Page[parcel.View]{}, err
		}
		views = append(views, view)
	}

	return pagination.Paginate(page, total, views), nil
}

// FindStale locks the returned rows so concurrent sweeps skip them.
func (r *GormPackageRepository) FindStale(ctx context.Context, cutoff time.Time, limit int) ([]*parcel.Package, error) {
	var dtos []PackageDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("status_id <> ?", int16(parcel.Archived)).
		Where("COALESCE(modified_at, created_at) < ?", cutoff.UTC()).
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	packages := make([]*parcel.Package, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}

	return packages, nil
}

func (r *GormPackageRepository) views(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("packages AS p").
		Select(viewColumns).
		Joins("JOIN package_categories c ON c.id = p.category_id").
		Joins("JOIN users su ON su.id = p.sender_user_id").
		Joins("JOIN users ru ON ru.id = p.receiver_user_id").
		Joins("JOIN departments sd ON sd.id = p.sender_department_id").
		Joins("JOIN departments rd ON rd.id = p.receiver_department_id")
}

func byFilter(filter ports.PackageFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.PartyUserID == nil {
			return db
		}
		return db.Where("(p.sender_user_id = ? OR p.receiver_user_id = ?)", *filter.PartyUserID, *filter.PartyUserID)
	}
}
