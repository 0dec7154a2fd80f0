// Package department provides the Department aggregate: a numbered branch that
// sends and receives packages.
package department

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"parcels/internal/pkg/errs"
)

const MaxFullAddressLength = 100

var ErrDepartmentIsNotConstructed = errors.New("Department must be created via NewDepartment or RestoreDepartment")

// Department numbers are unique; the store enforces it.
type Department struct {
	id          int64
	number      int
	fullAddress string

	isConstructed bool
}

func NewDepartment(number int, fullAddress string) (*Department, error) {
	d := &Department{isConstructed: true}

	if err := errors.Join(
		d.setNumber(number),
		d.setFullAddress(fullAddress),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func RestoreDepartment(id int64, number int, fullAddress string) (*Department, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("department id")
	}

	d, err := NewDepartment(number, fullAddress)
	if err != nil {
		return nil, err
	}
	d.id = id

	return d, nil
}

func (d *Department) Validate() error {
	if !d.isConstructed {
		return ErrDepartmentIsNotConstructed
	}
	return nil
}

func (d *Department) ID() int64 {
	return d.id
}

func (d *Department) Number() int {
	return d.number
}

func (d *Department) FullAddress() string {
	return d.fullAddress
}

func (d *Department) SetID(id int64) {
	d.id = id
}

// Update replaces number and address together; nothing changes if either is invalid.
func (d *Department) Update(number int, fullAddress string) error {
	next := *d
	if err := errors.Join(next.setNumber(number), next.setFullAddress(fullAddress)); err != nil {
		return err
	}
	*d = next
	return nil
}

func (d *Department) setNumber(number int) error {
	if number == 0 {
		return errs.NewValueIsRequiredError("number")
	}
	d.number = number
	return nil
}

func (d *Department) setFullAddress(fullAddress string) error {
	fullAddress = strings.TrimSpace(fullAddress)
	if fullAddress == "" {
		return errs.NewValueIsRequiredError("fullAddress")
	}
	if n := utf8.RuneCountInString(fullAddress); n > MaxFullAddressLength {
		return errs.NewValueIsInvalidErrorWithCause("fullAddress",
			fmt.Errorf("%d characters exceed the limit of %d", n, MaxFullAddressLength))
	}
	d.fullAddress = fullAddress
	return nil
}
