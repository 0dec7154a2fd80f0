// Package userrepo persists user aggregates in the users table.
package userrepo

import (
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/user"
)

// UserDTO is the users row.
type UserDTO struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	RoleID       int16   `gorm:"column:role_id;not null"`
	FirstName    string  `gorm:"size:30;not null"`
	LastName     string  `gorm:"size:30;not null"`
	Email        *string `gorm:"size:50"`
	PhoneNumber  string  `gorm:"size:20;not null"`
	PasswordHash *string `gorm:"size:72"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID(),
		RoleID:       int16(u.Role()),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		Email:        u.Email(),
		PhoneNumber:  u.PhoneNumber(),
		PasswordHash: u.PasswordHash(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	return user.RestoreUser(
		dto.ID,
		kernel.Role(dto.RoleID),
		dto.FirstName,
		dto.LastName,
		dto.Email,
		dto.PhoneNumber,
		dto.PasswordHash,
	)
}
