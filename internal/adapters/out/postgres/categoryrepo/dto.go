// Package categoryrepo persists package categories.
package categoryrepo

import (
	"parcels/internal/core/domain/model/category"
)

type CategoryDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:30;not null"`
}

func (CategoryDTO) TableName() string {
	return "package_categories"
}

func fromDomain(c *category.Category) CategoryDTO {
	return CategoryDTO{ID: c.ID(), Name: c.Name()}
}

func toDomain(dto CategoryDTO) (*category.Category, error) {
	return category.RestoreCategory(dto.ID, dto.Name)
}
