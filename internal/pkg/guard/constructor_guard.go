// Package guard provides the constructor guard embedded by commands, queries and
// value objects that must only be created through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes a value built by its constructor from a zero value.
//
// Example usage:
//
//	var ErrWeightNotConstructed = errors.New("Weight must be created via NewWeight")
//
//	type Weight struct {
//	    value decimal.Decimal
//	    guard guard.ConstructorGuard
//	}
//
//	func (w Weight) Validate() error {
//	    return w.guard.Validate(ErrWeightNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guarded object is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}

	if !g.isConstructed {
		return validationError
	}

	return nil
}
