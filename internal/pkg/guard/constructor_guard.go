// Package guard detects value objects and commands that were not built by their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in value objects, commands and queries.
// Its zero value fails validation, so a struct literal that skipped the
// constructor is rejected the first time it reaches a handler.
//
// Example:
//
//	type CancelRequestCommand struct {
//	    requestID kernel.ID
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c CancelRequestCommand) Validate() error {
//	    return c.guard.Validate(ErrCancelRequestCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// for a zero-value guard and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
