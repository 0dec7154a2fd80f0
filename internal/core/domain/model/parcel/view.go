package parcel

import (
	"parcels/internal/core/domain/model/kernel"
)

// Party is the public profile of a sender or receiver.
type Party struct {
	ID          int64
	FirstName   string
	LastName    string
	Email       *string
	PhoneNumber string
}

type DepartmentRef struct {
	ID          int64
	Number      int
	FullAddress string
}

type CategoryRef struct {
	ID   int64
	Name string
}

// View is a package with every reference resolved, as returned to API callers.
type View struct {
	ID                 kernel.UUID
	Status             Status
	Category           CategoryRef
	Sender             Party
	Receiver           Party
	SenderDepartment   DepartmentRef
	ReceiverDepartment DepartmentRef
	Details            Details
	Timeline           Timeline
}

// IsParty reports whether the user sends or receives the package.
func (v View) IsParty(userID int64) bool {
	return v.Sender.ID == userID || v.Receiver.ID == userID
}
