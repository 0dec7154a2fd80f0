package pgtest

import (
	"context"
	"fmt"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"

	"github.com/shopspring/decimal"
)

// Fixture holds the ids of rows seeded for package tests.
type Fixture struct {
	CategoryID int64
	SenderID   int64
	ReceiverID int64
	OutsiderID int64
	FromDeptID int64
	ToDeptID   int64
}

// Seed inserts a category, three clients and two departments with plain SQL so
// package tests do not depend on the other repositories.
func (d *Database) Seed(ctx context.Context) (Fixture, error) {
	var f Fixture
	db := d.DB.WithContext(ctx)

	if err := db.Raw(`INSERT INTO package_categories (name) VALUES ('Documents') RETURNING id`).
		Scan(&f.CategoryID).Error; err != nil {
		return f, err
	}

	for i, dst := range []*int64{&f.SenderID, &f.ReceiverID, &f.OutsiderID} {
		if err := db.Raw(
			`INSERT INTO users (role_id, first_name, last_name, phone_number) VALUES (3, ?, 'Client', ?) RETURNING id`,
			fmt.Sprintf("Client%d", i), fmt.Sprintf("+38050000000%d", i),
		).Scan(dst).Error; err != nil {
			return f, err
		}
	}

	for i, dst := range []*int64{&f.FromDeptID, &f.ToDeptID} {
		if err := db.Raw(
			`INSERT INTO departments (number, full_address) VALUES (?, ?) RETURNING id`,
			i+1, fmt.Sprintf("Street %d", i+1),
		).Scan(dst).Error; err != nil {
			return f, err
		}
	}

	return f, nil
}

// NewPackage builds a valid package between the fixture sender and receiver.
func (f Fixture) NewPackage(createdAt time.Time) *parcel.Package {
	description := "books"
	p, err := parcel.NewPackage(kernel.NewUUID(), parcel.Details{
		CategoryID:           f.CategoryID,
		SenderUserID:         f.SenderID,
		ReceiverUserID:       f.ReceiverID,
		SenderDepartmentID:   f.FromDeptID,
		ReceiverDepartmentID: f.ToDeptID,
		PackagePrice:         decimal.RequireFromString("120.50"),
		DeliveryPrice:        decimal.RequireFromString("5.00"),
		Weight:               decimal.RequireFromString("1.25"),
		Description:          &description,
	}, createdAt)
	if err != nil {
		panic(err)
	}
	return p
}
