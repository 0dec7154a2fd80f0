package categoryrepo

import (
	"context"
	"errors"

	"parcels/internal/adapters/out/postgres/pgutil"
	"parcels/internal/core/domain/model/category"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/pagination"

	"gorm.io/gorm"
)

// GormCategoryRepository implements ports.CategoryRepository using GORM.
type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) Add(ctx context.Context, aggregate *category.Category) error {
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

func (r *GormCategoryRepository) Update(ctx context.Context, aggregate *category.Category) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CategoryDTO{}).Where("id = ?", dto.ID).Update("name", dto.Name)
	if result.Error != nil {
		return pgutil.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("category", dto.ID)
	}

	return nil
}

func (r *GormCategoryRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&CategoryDTO{}, id)
	if result.Error != nil {
		return pgutil.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("category", id)
	}

	return nil
}

func (r *GormCategoryRepository) Get(ctx context.Context, id int64) (*category.Category, error) {
	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("category", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormCategoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&CategoryDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormCategoryRepository) List(ctx context.Context, page pagination.Request) (pagination.Page[*category.Category], error) {
	total, rows, err := pgutil.FindPage[CategoryDTO](ctx, r.db, page, "id")
	if err != nil {
		return pagination.Page[*category.Category]{}, err
	}

	categories := make([]*category.Category, 0, len(rows))
	for _, row := range rows {
		c, err := toDomain(row)
		if err != nil {
			return pagination.Page[*category.Category]{}, err
		}
		categories = append(categories, c)
	}

	return pagination.Paginate(page, total, categories), nil
}
