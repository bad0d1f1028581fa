// Package guard implements the constructor-guard pattern used by value objects,
// entities, commands, and queries to ensure they are only created through their
// designated constructor functions. A zero-value struct fails Validate, which
// prevents bypassing the validation rules a constructor enforces.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is
// provided and the guarded object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether its enclosing struct was built through a
// constructor. Embed it as a private field and set it with NewConstructorGuard
// in the constructor; a zero value then fails Validate.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it only from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object was created through its
// constructor. It returns validationError (or ErrDefaultConstructorGuard when
// validationError is nil) for zero-value guards, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
