package userrepo

import (
	"context"
	"errors"

	"parcels/internal/adapters/out/postgres/pgutil"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/pagination"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add inserts the user and writes the generated id back into the aggregate.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
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

// Update overwrites every column, including ones set to NULL.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).Where("id = ?", dto.ID).Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		return pgutil.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", dto.ID)
	}

	return nil
}

func (r *GormUserRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&UserDTO{}, id)
	if result.Error != nil {
		return pgutil.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", id)
	}

	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	return r.first(ctx, id, "id = ?", id)
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.first(ctx, email, "email = ?", email)
}

func (r *GormUserRepository) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*user.User, error) {
	return r.first(ctx, phoneNumber, "phone_number = ?", phoneNumber)
}

func (r *GormUserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&UserDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormUserRepository) List(ctx context.Context, page pagination.Request) (pagination.Page[*user.User], error) {
	total, rows, err := pgutil.FindPage[UserDTO](ctx, r.db, page, "id")
	if err != nil {
		return pagination.Page[*user.User]{}, err
	}

	users := make([]*user.User, 0, len(rows))
	for _, row := range rows {
		u, err := toDomain(row)
		if err != nil {
			return pagination.Page[*user.User]{}, err
		}
		users = append(users, u)
	}

	return pagination.Paginate(page, total, users), nil
}

func (r *GormUserRepository) first(ctx context.Context, key any, query string, args ...any) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", key)
		}
		return nil, err
	}

	return toDomain(dto)
}
