package departmentrepo

import (
	"context"
	"errors"

	"parcels/internal/adapters/out/postgres/pgutil"
	"parcels/internal/core/domain/model/department"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/pagination"

	"gorm.io/gorm"
)

// GormDepartmentRepository implements ports.DepartmentRepository using GORM.
type GormDepartmentRepository struct {
	db *gorm.DB
}

func NewGormDepartmentRepository(db *gorm.DB) *GormDepartmentRepository {
	return &GormDepartmentRepository{db: db}
}

func (r *GormDepartmentRepository) Add(ctx context.Context, aggregate *department.Department) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.Translate(err)
	}

	aggregate.SetID(dto.ID)
	return nil
}

func (r *GormDepartmentRepository) Update(ctx context.Context, aggregate *department.Department) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DepartmentDTO{}).Where("id = ?", dto.ID).Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		return pgutil.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("department", dto.ID)
	}

	return nil
}

// Delete fails with errs.ReferenceViolationError while packages still use the department.
func (r *GormDepartmentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&DepartmentDTO{}, id)
	if result.Error != nil {
		return pgutil.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("department", id)
	}

	return nil
}

func (r *GormDepartmentRepository) Get(ctx context.Context, id int64) (*department.Department, error) {
	var dto DepartmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("department", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormDepartmentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&DepartmentDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormDepartmentRepository) List(ctx context.Context, page pagination.Request) (pagination.Page[*department.Department], error) {
	total, rows, err := pgutil.FindPage[DepartmentDTO](ctx, r.db, page, "number")
	if err != nil {
		return pagination.Page[*department.Department]{}, err
	}

	departments := make([]*department.Department, 0, len(rows))
	for _, row := range rows {
		d, err := toDomain(row)
		if err != nil {
			return pagination.Page[*department.Department]{}, err
		}
		departments = append(departments, d)
	}

	return pagination.Paginate(page, total, departments), nil
}
