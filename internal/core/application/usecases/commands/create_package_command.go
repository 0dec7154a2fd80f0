package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreatePackageCommandIsNotConstructed = errors.New(
	"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
)

// CreatePackageInput is the raw request payload. Amounts are nil when absent so
// that a missing value is told apart from zero.
type CreatePackageInput struct {
	CategoryID           int64
	SenderUserID         int64
	ReceiverUserID       int64
	SenderDepartmentID   int64
	ReceiverDepartmentID int64
	PackagePrice         *decimal.Decimal
	DeliveryPrice        *decimal.Decimal
	Weight               *decimal.Decimal
	Description          *string
}

// CreatePackageCommand registers a new shipment in the Created status.
//
// Example:
//
//	price := decimal.RequireFromString("120.00")
//	cmd, err := NewCreatePackageCommand(caller, CreatePackageInput{...PackagePrice: &price...})
//	if err != nil {
//	    return err // *errs.ValidationError listing every violated field
//	}
//	view, err := handler.Handle(ctx, cmd)
type CreatePackageCommand struct {
	caller  kernel.Caller
	details parcel.Details

	guard guard.ConstructorGuard
}

func NewCreatePackageCommand(caller kernel.Caller, in CreatePackageInput) (CreatePackageCommand, error) {
	v := errs.NewValidationError()

	details := parcel.Details{
		CategoryID:           requiredID(v, "categoryId", in.CategoryID),
		SenderUserID:         requiredID(v, "senderUserId", in.SenderUserID),
		ReceiverUserID:       requiredID(v, "receiverUserId", in.ReceiverUserID),
		SenderDepartmentID:   requiredID(v, "senderDepartmentId", in.SenderDepartmentID),
		ReceiverDepartmentID: requiredID(v, "receiverDepartmentId", in.ReceiverDepartmentID),
		PackagePrice:         requiredAmount(v, "packagePrice", in.PackagePrice, kernel.MoneyShape, decimal.Zero),
		DeliveryPrice:        requiredAmount(v, "deliveryPrice", in.DeliveryPrice, kernel.MoneyShape, parcel.MinDeliveryPrice),
		Weight:               requiredAmount(v, "weight", in.Weight, kernel.WeightShape, parcel.MinWeight),
		Description:          optionalString(v, "description", in.Description, parcel.MaxDescriptionLength),
	}

	if in.SenderUserID != 0 && in.SenderUserID == in.ReceiverUserID {
		v.Add("receiverUserId", "receiverUserId must differ from senderUserId")
	}
	if in.SenderDepartmentID != 0 && in.SenderDepartmentID == in.ReceiverDepartmentID {
		v.Add("receiverDepartmentId", "receiverDepartmentId must differ from senderDepartmentId")
	}

	if err := v.OrNil(); err != nil {
		return CreatePackageCommand{}, err
	}

	return CreatePackageCommand{
		caller:  caller,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

func (c CreatePackageCommand) Caller() kernel.Caller {
	return c.caller
}

func (c CreatePackageCommand) Details() parcel.Details {
	return c.details
}
