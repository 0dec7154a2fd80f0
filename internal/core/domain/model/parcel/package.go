// Package parcel holds the Package aggregate: a shipment tracked from creation to
// archival, together with its Status state machine and the hydrated View used for
// responses.
package parcel

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const MaxDescriptionLength = 50

var (
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage or RestorePackage")
	ErrAlreadyArchived         = errors.New("package is already archived")

	MinDeliveryPrice = decimal.NewFromInt(5)
	MinWeight        = decimal.New(20, -2)
)

// Details are the caller-supplied attributes of a new package. Everything except
// CategoryID and Description is immutable after creation.
type Details struct {
	CategoryID           int64
	SenderUserID         int64
	ReceiverUserID       int64
	SenderDepartmentID   int64
	ReceiverDepartmentID int64
	PackagePrice         decimal.Decimal
	DeliveryPrice        decimal.Decimal
	Weight               decimal.Decimal
	Description          *string
}

// Timeline holds the lifecycle timestamps. Once a timestamp is set it is never cleared.
type Timeline struct {
	CreatedAt  time.Time
	ModifiedAt *time.Time
	SentAt     *time.Time
	ArrivedAt  *time.Time
	ReceivedAt *time.Time
	ArchivedAt *time.Time
}

// Package is the aggregate root for shipments.
//
// Invariants:
//   - sender and receiver differ, both as users and as departments
//   - prices fit numeric(8,2) and are not negative, delivery price is at least 5.00
//   - weight fits numeric(4,2) and is at least 0.20
//   - description is at most 50 characters
type Package struct {
	id       kernel.UUID
	status   Status
	details  Details
	timeline Timeline

	isConstructed bool
}

// NewPackage creates a package in the Created status with createdAt set to now and
// every other timestamp empty.
func NewPackage(id kernel.UUID, details Details, now time.Time) (*Package, error) {
	p := &Package{
		status:        Created,
		timeline:      Timeline{CreatedAt: now.UTC()},
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setDetails(details),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePackage rebuilds a persisted package.
func RestorePackage(id kernel.UUID, status Status, details Details, timeline Timeline) (*Package, error) {
	p := &Package{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		status.Validate(),
		p.setDetails(details),
	); err != nil {
		return nil, err
	}

	p.status = status
	p.timeline = timeline

	return p, nil
}

func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

func (p *Package) ID() kernel.UUID {
	return p.id
}

func (p *Package) Status() Status {
	return p.status
}

func (p *Package) Details() Details {
	return p.details
}

func (p *Package) Timeline() Timeline {
	return p.timeline
}

// IsParty reports whether the user sends or receives the package.
func (p *Package) IsParty(userID int64) bool {
	return p.details.SenderUserID == userID || p.details.ReceiverUserID == userID
}

// LastChangedAt is the latest of createdAt and modifiedAt.
func (p *Package) LastChangedAt() time.Time {
	if p.timeline.ModifiedAt != nil && p.timeline.ModifiedAt.After(p.timeline.CreatedAt) {
		return *p.timeline.ModifiedAt
	}
	return p.timeline.CreatedAt
}

// Modify changes category and description and moves the package to Modified.
// The package is left untouched on error.
func (p *Package) Modify(categoryID int64, description *string, now time.Time) error {
	next, err := p.status.Modify()
	if err != nil {
		return err
	}

	if err = errors.Join(
		validateReference("categoryId", categoryID),
		validateDescription(description),
	); err != nil {
		return err
	}

	modifiedAt := now.UTC()
	p.status = next
	p.details.CategoryID = categoryID
	p.details.Description = normalizeDescription(description)
	p.timeline.ModifiedAt = &modifiedAt

	return nil
}

// Archive moves the package to the terminal Archived status. Archiving twice is an
// error and keeps the original archivedAt.
func (p *Package) Archive(now time.Time) error {
	next, err := p.status.Archive()
	if err != nil {
		return err
	}

	archivedAt := now.UTC()
	p.status = next
	p.timeline.ArchivedAt = &archivedAt

	return nil
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setDetails(d Details) error {
	err := errors.Join(
		validateReference("categoryId", d.CategoryID),
		validateReference("senderUserId", d.SenderUserID),
		validateReference("receiverUserId", d.ReceiverUserID),
		validateReference("senderDepartmentId", d.SenderDepartmentID),
		validateReference("receiverDepartmentId", d.ReceiverDepartmentID),
		validateDistinct("receiverUserId", d.SenderUserID, d.ReceiverUserID),
		validateDistinct("receiverDepartmentId", d.SenderDepartmentID, d.ReceiverDepartmentID),
		ValidateMoney("packagePrice", d.PackagePrice, decimal.Zero),
		ValidateMoney("deliveryPrice", d.DeliveryPrice, MinDeliveryPrice),
		ValidateWeight("weight", d.Weight),
		validateDescription(d.Description),
	)
	if err != nil {
		return err
	}

	d.Description = normalizeDescription(d.Description)
	p.details = d
	return nil
}

// ValidateMoney checks a numeric(8,2) amount that must be at least minValue.
func ValidateMoney(field string, value, minValue decimal.Decimal) error {
	if err := kernel.MoneyShape.Check(value); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	if value.LessThan(minValue) {
		return errs.NewValueIsOutOfRangeError(field, value.String(), minValue.StringFixed(2), "999999.99")
	}
	return nil
}

// ValidateWeight checks a numeric(4,2) weight of at least MinWeight.
func ValidateWeight(field string, value decimal.Decimal) error {
	if err := kernel.WeightShape.Check(value); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	if value.LessThan(MinWeight) {
		return errs.NewValueIsOutOfRangeError(field, value.String(), MinWeight.StringFixed(2), "99.99")
	}
	return nil
}

func validateReference(field string, id int64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError(field)
	}
	if id < 0 {
		return errs.NewValueIsInvalidErrorWithCause(field, fmt.Errorf("%d is not a valid id", id))
	}
	return nil
}

func validateDistinct(field string, sender, receiver int64) error {
	if sender != 0 && sender == receiver {
		return errs.NewValueIsInvalidErrorWithCause(field, errors.New("must differ from the sender"))
	}
	return nil
}

func validateDescription(description *string) error {
	if description == nil {
		return nil
	}
	if n := utf8.RuneCountInString(strings.TrimSpace(*description)); n > MaxDescriptionLength {
		return errs.NewValueIsInvalidErrorWithCause("description",
			fmt.Errorf("%d characters exceed the limit of %d", n, MaxDescriptionLength))
	}
	return nil
}

func normalizeDescription(description *string) *string {
	if description == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*description)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
