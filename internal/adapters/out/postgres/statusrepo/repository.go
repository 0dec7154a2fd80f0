// Package statusrepo reads the seeded package_statuses table.
package statusrepo

import (
	"context"

	"parcels/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

type StatusDTO struct {
	ID   int16  `gorm:"primaryKey"`
	Name string `gorm:"size:20;not null"`
}

func (StatusDTO) TableName() string {
	return "package_statuses"
}

type GormStatusRepository struct {
	db *gorm.DB
}

func NewGormStatusRepository(db *gorm.DB) *GormStatusRepository {
	return &GormStatusRepository{db: db}
}

// List returns the statuses ordered by id. Rows the domain does not know are rejected.
func (r *GormStatusRepository) List(ctx context.Context) ([]parcel.Status, error) {
	var rows []StatusDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	statuses := make([]parcel.Status, 0, len(rows))
	for _, row := range rows {
		status := parcel.Status(row.ID)
		if err := status.Validate(); err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}
