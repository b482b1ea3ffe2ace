package typeinfo

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType is returned when a type tag does not name a registered type.
	ErrUnknownType = errors.New("unknown type")
	// ErrNotInstantiable is returned when no value of a type can be created.
	ErrNotInstantiable = errors.New("cannot instantiate")
	// ErrUnknownEnumMember is returned when an enum has no member of the given name.
	ErrUnknownEnumMember = errors.New("unknown enum member")
	// ErrInvalidConstructor is returned when a registered constructor has an unusable signature.
	ErrInvalidConstructor = errors.New("invalid constructor")
)

// TypeError is a type resolution failure naming the offending type.
type TypeError struct {
	name   string
	parent error
}

func errType(name string, parent error) error {
	return TypeError{name: name, parent: parent}
}

// TypeName returns the name of the type that failed to resolve.
func (e TypeError) TypeName() string {
	return e.name
}

// Unwrap returns the underlying cause.
func (e TypeError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the type error.
func (e TypeError) Error() string {
	return fmt.Sprintf("%s: %s", e.parent, e.name)
}
