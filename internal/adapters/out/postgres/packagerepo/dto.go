// Package packagerepo persists package aggregates and reads the joined views
// returned to API callers.
package packagerepo

import (
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PackageDTO is the packages row.
type PackageDTO struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StatusID             int16           `gorm:"not null"`
	CategoryID           int64           `gorm:"not null"`
	SenderUserID         int64           `gorm:"not null"`
	ReceiverUserID       int64           `gorm:"not null"`
	SenderDepartmentID   int64           `gorm:"not null"`
	ReceiverDepartmentID int64           `gorm:"not null"`
	CreatedAt            time.Time       `gorm:"not null;autoCreateTime:false"`
	ModifiedAt           *time.Time
	SentAt               *time.Time
	ArrivedAt            *time.Time
	ReceivedAt           *time.Time
	ArchivedAt           *time.Time
	PackagePrice         decimal.Decimal `gorm:"type:numeric(8,2);not null"`
	DeliveryPrice        decimal.Decimal `gorm:"type:numeric(8,2);not null"`
	Weight               decimal.Decimal `gorm:"type:numeric(4,2);not null"`
	Description          *string         `gorm:"size:50"`
}

func (PackageDTO) TableName() string {
	return "packages"
}

func fromDomain(p *parcel.Package) PackageDTO {
	d := p.Details()
	t := p.Timeline()

	return PackageDTO{
		ID:                   p.ID().Bytes(),
		StatusID:             int16(p.Status()),
		CategoryID:           d.CategoryID,
		SenderUserID:         d.SenderUserID,
		ReceiverUserID:       d.ReceiverUserID,
		SenderDepartmentID:   d.SenderDepartmentID,
		ReceiverDepartmentID: d.ReceiverDepartmentID,
		CreatedAt:            t.CreatedAt,
		ModifiedAt:           t.ModifiedAt,
		SentAt:               t.SentAt,
		ArrivedAt:            t.ArrivedAt,
		ReceivedAt:           t.ReceivedAt,
		ArchivedAt:           t.ArchivedAt,
		PackagePrice:         d.PackagePrice,
		DeliveryPrice:        d.DeliveryPrice,
		Weight:               d.Weight,
		Description:          d.Description,
	}
}

func (dto PackageDTO) details() parcel.Details {
	return parcel.Details{
		CategoryID:           dto.CategoryID,
		SenderUserID:         dto.SenderUserID,
		ReceiverUserID:       dto.ReceiverUserID,
		SenderDepartmentID:   dto.SenderDepartmentID,
		ReceiverDepartmentID: dto.ReceiverDepartmentID,
		PackagePrice:         dto.PackagePrice,
		DeliveryPrice:        dto.DeliveryPrice,
		Weight:               dto.Weight,
		Description:          dto.Description,
	}
}

func (dto PackageDTO) timeline() parcel.Timeline {
	return parcel.Timeline{
		CreatedAt:  dto.CreatedAt.UTC(),
		ModifiedAt: utc(dto.ModifiedAt),
		SentAt:     utc(dto.SentAt),
		ArrivedAt:  utc(dto.ArrivedAt),
		ReceivedAt: utc(dto.ReceivedAt),
		ArchivedAt: utc(dto.ArchivedAt),
	}
}

func toDomain(dto PackageDTO) (*parcel.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return parcel.RestorePackage(id, parcel.Status(dto.StatusID), dto.details(), dto.timeline())
}

// viewRow is one row of the joined view query. The package columns are embedded
// so the select list can use p.* directly.
type viewRow struct {
	PackageDTO `gorm:"embedded"`

	CategoryName string

	SenderFirstName   string
	SenderLastName    string
	SenderEmail       *string
	SenderPhoneNumber string

	ReceiverFirstName   string
	ReceiverLastName    string
	ReceiverEmail       *string
	ReceiverPhoneNumber string

	SenderDepartmentNumber        int
	SenderDepartmentFullAddress   string
	ReceiverDepartmentNumber      int
	ReceiverDepartmentFullAddress string
}

func (row viewRow) toView() (parcel.View, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return parcel.View{}, err
	}

	status := parcel.Status(row.StatusID)
	if err = status.Validate(); err != nil {
		return parcel.View{}, err
	}

	return parcel.View{
		ID:       id,
		Status:   status,
		Category: parcel.CategoryRef{ID: row.CategoryID, Name: row.CategoryName},
		Sender: parcel.Party{
			ID:          row.SenderUserID,
			FirstName:   row.SenderFirstName,
			LastName:    row.SenderLastName,
			Email:       row.SenderEmail,
			PhoneNumber: row.SenderPhoneNumber,
		},
		Receiver: parcel.Party{
			ID:          row.ReceiverUserID,
			FirstName:   row.ReceiverFirstName,
			LastName:    row.ReceiverLastName,
			Email:       row.ReceiverEmail,
			PhoneNumber: row.ReceiverPhoneNumber,
		},
		SenderDepartment: parcel.DepartmentRef{
			ID:          row.SenderDepartmentID,
			Number:      row.SenderDepartmentNumber,
			FullAddress: row.SenderDepartmentFullAddress,
		},
		ReceiverDepartment: parcel.DepartmentRef{
			ID:          row.ReceiverDepartmentID,
			Number:      row.ReceiverDepartmentNumber,
			FullAddress: row.ReceiverDepartmentFullAddress,
		},
		Details:  row.details(),
		Timeline: row.timeline(),
	}, nil
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
