// Package guard holds small invariants shared by domain types.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when
// no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built through its constructor so that a
// zero value can be told apart from a real one.
//
// Embed it in aggregates and value objects and check it from Validate:
//
//	var ErrProductNotConstructed = errors.New("product must be created via NewProduct")
//
//	type Product struct {
//	    id    int64
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (p Product) Validate() error {
//	    return p.guard.Validate(ErrProductNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard flagged as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
