// Package guard provides ConstructorGuard, a marker that lets value objects,
// entities and commands detect whether they were built through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types that must only be created through a
// constructor. Its zero value reports "not constructed".
//
// Example:
//
//	var ErrItemNotConstructed = errors.New("Item must be created via NewItem")
//
//	type Item struct {
//	    quantity int
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewItem(quantity int) Item {
//	    return Item{quantity: quantity, guard: guard.NewConstructorGuard()}
//	}
//
//	func (i Item) Validate() error {
//	    return i.guard.Validate(ErrItemNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
