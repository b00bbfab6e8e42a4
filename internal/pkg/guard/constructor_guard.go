// Package guard provides a defensive construction pattern for domain objects.
// Embedding a ConstructorGuard in a struct makes zero-value instances detectable,
// so objects that bypassed their constructor fail validation instead of silently
// carrying unvalidated state.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. The guard maintains an internal flag
// that is only set when the object is created through the proper constructor;
// zero-value structs fail validation.
//
// Example usage:
//
//	var ErrSpecNotConstructed = errors.New("Spec must be created via NewSpec")
//
//	type Spec struct {
//	    name  string
//	    guard ConstructorGuard
//	}
//
//	func NewSpec(name string) (Spec, error) {
//	    if name == "" {
//	        return Spec{}, errors.New("name is required")
//	    }
//	    return Spec{name: name, guard: NewConstructorGuard()}, nil
//	}
//
//	func (s Spec) Validate() error {
//	    return s.guard.Validate(ErrSpecNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
// Call it in the constructor of domain objects so they can be distinguished from
// zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed.
// Returns nil for constructed objects, the provided validationError for
// zero values, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
