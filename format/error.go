package format

import (
	"errors"
	"fmt"
)

// Usage problems: the Writer API was driven incorrectly.
var (
	ErrDanglingName     = errors.New("dangling property name")
	ErrNesting          = errors.New("nesting problem")
	ErrIncomplete       = errors.New("incomplete document")
	ErrMultipleTopLevel = errors.New("document must have only one top-level value")
	ErrNonFinite        = errors.New("numeric values must be finite")
	ErrNotContainer     = errors.New("must start with an object or array")
	ErrInvalidName      = errors.New("invalid property name")
	ErrUnsupportedValue = errors.New("unsupported value")
)

// Framing problems: the input is not a well-formed document.
var (
	ErrUnexpectedEOF      = errors.New("unexpected end of input")
	ErrLengthMismatch     = errors.New("length mismatch")
	ErrInvalidSize        = errors.New("invalid size")
	ErrUnterminatedString = errors.New("unterminated string")
	ErrUnsupportedType    = errors.New("unsupported type")
	ErrMalformed          = errors.New("malformed input")
	ErrTrailingData       = errors.New("trailing data after document")
	ErrAliasExpansion     = errors.New("excessive alias expansion")
	ErrUnexpectedTopLevel = errors.New("unexpected top-level value")
	ErrNonStringKey       = errors.New("map key must be a string")
	ErrArrayIndex         = errors.New("array key does not match its index")
	ErrUnexpectedEvent    = errors.New("unexpected event")
	ErrKeysItemsLength    = errors.New("$keys and $items lengths differ")
	ErrKeysWithoutItems   = errors.New("$keys and $items must be present together")
)

func wrapf(err error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{err}, args...)...)
}

// UsageError is a programmer error in how a Writer or Reader was driven.
type UsageError struct {
	parent error
}

func errUsage(parent error) error {
	if parent == nil {
		return nil
	}

	return UsageError{parent: parent}
}

// NewUsageError wraps parent into a UsageError.
func NewUsageError(parent error) error {
	return errUsage(parent)
}

// Unwrap returns the underlying error.
func (e UsageError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the usage error.
func (e UsageError) Error() string {
	return fmt.Sprintf("usage error: %s", e.parent)
}

// FramingError is a malformed-input error with the byte offset where it was
// detected (-1 when unknown).
type FramingError struct {
	offset int64
	parent error
}

// NewFramingError wraps parent into a FramingError at offset.
func NewFramingError(offset int64, parent error) error {
	if parent == nil {
		return nil
	}

	return FramingError{offset: offset, parent: parent}
}

// Offset returns the byte offset of the problem, or -1.
func (e FramingError) Offset() int64 {
	return e.offset
}

// Unwrap returns the underlying error.
func (e FramingError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the framing error.
func (e FramingError) Error() string {
	if e.offset < 0 {
		return fmt.Sprintf("framing error: %s", e.parent)
	}

	return fmt.Sprintf("framing error at offset %d: %s", e.offset, e.parent)
}

// StructuralError is a well-framed document with an impossible shape.
type StructuralError struct {
	parent error
}

// NewStructuralError wraps parent into a StructuralError.
func NewStructuralError(parent error) error {
	if parent == nil {
		return nil
	}

	return StructuralError{parent: parent}
}

// Unwrap returns the underlying error.
func (e StructuralError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the structural error.
func (e StructuralError) Error() string {
	return fmt.Sprintf("structural error: %s", e.parent)
}
