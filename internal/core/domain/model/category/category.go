// Package category provides the PackageCategory aggregate. Category names are unique.
package category

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"parcels/internal/pkg/errs"
)

const MaxNameLength = 30

var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory or RestoreCategory")

type Category struct {
	id   int64
	name string

	isConstructed bool
}

func NewCategory(name string) (*Category, error) {
	c := &Category{isConstructed: true}
	if err := c.setName(name); err != nil {
		return nil, err
	}
	return c, nil
}

func RestoreCategory(id int64, name string) (*Category, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("category id")
	}

	c, err := NewCategory(name)
	if err != nil {
		return nil, err
	}
	c.id = id

	return c, nil
}

func (c *Category) Validate() error {
	if !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

func (c *Category) ID() int64 {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) SetID(id int64) {
	c.id = id
}

// Rename reports whether the name actually changed. Renaming to the current
// name is a no-op, not a uniqueness conflict.
func (c *Category) Rename(name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == c.name {
		return false, nil
	}
	if err := c.setName(name); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Category) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return errs.NewValueIsInvalidErrorWithCause("name",
			fmt.Errorf("%d characters exceed the limit of %d", n, MaxNameLength))
	}
	c.name = name
	return nil
}
