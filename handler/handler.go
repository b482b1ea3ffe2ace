// Package handler holds the custom type handler registries and the handlers
// for well-known types.
//
// A writer-side handler decomposes a value into a few named scalar
// properties, and optionally into a single compact scalar. A reader-side
// handler rebuilds the value from either form.
package handler

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/tarantool/go-graphcodec/format"
	"github.com/tarantool/go-graphcodec/tree"
)

// Writer writes the named-property form of a value into an object that the
// caller has already opened (and will close).
type Writer interface {
	Write(w format.Writer, v reflect.Value) error
}

// CompactWriter is a Writer that can also write a value as a single scalar.
type CompactWriter interface {
	Writer
	WriteCompact(w format.Writer, v reflect.Value) error
}

// Reader rebuilds a value of type t from a *tree.Object holding the named
// form or from a scalar holding the compact form.
type Reader interface {
	Read(v any, t reflect.Type) (any, error)
}

// Writers is the writer-side registry.
type Writers = Registry[Writer]

// Readers is the reader-side registry.
type Readers = Registry[Reader]

// ErrMissingField is returned when a required property is absent.
var ErrMissingField = errors.New("missing required field")

// ErrUnexpectedValue is returned when a handler receives a value it cannot read.
var ErrUnexpectedValue = errors.New("unexpected value")

// MissingFieldError names the property a handler required.
type MissingFieldError struct {
	Type  reflect.Type
	Field string
}

func errMissingField(t reflect.Type, field string) error {
	return MissingFieldError{Type: t, Field: field}
}

// Unwrap returns ErrMissingField.
func (e MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// Error returns a string representation of the missing field error.
func (e MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s.%s", ErrMissingField, e.Type, e.Field)
}

func errUnexpected(t reflect.Type, v any) error {
	return fmt.Errorf("%w: %T for %s", ErrUnexpectedValue, v, t)
}

// Field returns the value of a required property of obj.
func Field(obj *tree.Object, t reflect.Type, name string) (any, error) {
	v, ok := obj.Get(name)
	if !ok {
		return nil, errMissingField(t, name)
	}

	return v, nil
}

// StringField returns a required string property of obj.
func StringField(obj *tree.Object, t reflect.Type, name string) (string, error) {
	v, err := Field(obj, t, name)
	if err != nil {
		return "", err
	}

	s, ok := v.(string)
	if !ok {
		return "", errUnexpected(t, v)
	}

	return s, nil
}

// WriteProperty writes name followed by a string value.
func WriteProperty(w format.Writer, name, value string) error {
	if err := w.PropertyName(name); err != nil {
		return err
	}

	return w.String(value)
}

// compactString reads the single string of a value either written compactly
// or as {value: "..."}.
func compactString(v any, t reflect.Type) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case *tree.Object:
		return StringField(x, t, "value")
	default:
		return "", errUnexpected(t, v)
	}
}

// addressable returns a pointer to v's value, copying when v is not
// addressable.
func addressable(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Pointer {
		return v
	}

	if v.CanAddr() {
		return v.Addr()
	}

	p := reflect.New(v.Type())
	p.Elem().Set(v)

	return p
}
