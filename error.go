package graphcodec

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrCycle is returned when a value graph refers back to itself.
	ErrCycle = errors.New("cycle in value graph")
	// ErrUnsupportedKind is returned for values no format can carry.
	ErrUnsupportedKind = errors.New("unsupported kind")
	// ErrUnknownFormat is returned for an unrecognized wire format.
	ErrUnknownFormat = errors.New("unknown format")
	// ErrInvalidTarget is returned when the decode target is not a non-nil pointer.
	ErrInvalidTarget = errors.New("decode target must be a non-nil pointer")
	// ErrConversion is returned when a decoded value does not fit its slot.
	ErrConversion = errors.New("cannot convert value")
)

// ConversionError describes a decoded value that could not be stored into a
// field or element.
type ConversionError struct {
	// Field is the field name, element index or map key of the slot.
	Field string
	// Type is the type of the slot.
	Type reflect.Type
	// Value is the offending value.
	Value  any
	parent error
}

func errConversion(field string, t reflect.Type, v any, cause error) error {
	parent := ErrConversion
	if cause != nil {
		parent = fmt.Errorf("%w: %w", ErrConversion, cause)
	}

	return ConversionError{Field: field, Type: t, Value: v, parent: parent}
}

// Unwrap returns the underlying cause.
func (e ConversionError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the conversion error.
func (e ConversionError) Error() string {
	return fmt.Sprintf("%s: %s (%T) into %s %s", e.parent, describe(e.Value), e.Value, e.Field, e.Type)
}

func describe(v any) string {
	switch v.(type) {
	case nil, bool, int32, int64, float32, float64, string:
		return fmt.Sprintf("%v", v)
	default:
		return "node"
	}
}
