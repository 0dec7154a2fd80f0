// Package departmentrepo persists departments.
package departmentrepo

import (
	"parcels/internal/core/domain/model/department"
)

type DepartmentDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Number      int    `gorm:"not null"`
	FullAddress string `gorm:"size:100;not null"`
}

func (DepartmentDTO) TableName() string {
	return "departments"
}

func fromDomain(d *department.Department) DepartmentDTO {
	return DepartmentDTO{
		ID:          d.ID(),
		Number:      d.Number(),
		FullAddress: d.FullAddress(),
	}
}

func toDomain(dto DepartmentDTO) (*department.Department, error) {
	return department.RestoreDepartment(dto.ID, dto.Number, dto.FullAddress)
}
