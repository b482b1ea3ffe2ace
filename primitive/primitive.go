// Package primitive classifies the scalar kinds every format encodes natively
// and boxes decoded scalars into them.
package primitive

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"unicode/utf8"
)

var (
	// ErrOverflow is returned when a value does not fit the target type.
	ErrOverflow = errors.New("value overflows target type")
	// ErrIncompatible is returned when a value cannot be converted at all.
	ErrIncompatible = errors.New("incompatible value")
)

// Alias is a short type tag naming a primitive type.
type Alias struct {
	Name string
	Type reflect.Type
}

var aliases = []Alias{
	{Name: "boolean", Type: reflect.TypeFor[bool]()},
	{Name: "byte", Type: reflect.TypeFor[uint8]()},
	{Name: "short", Type: reflect.TypeFor[int16]()},
	{Name: "int", Type: reflect.TypeFor[int32]()},
	{Name: "long", Type: reflect.TypeFor[int64]()},
	{Name: "float", Type: reflect.TypeFor[float32]()},
	{Name: "double", Type: reflect.TypeFor[float64]()},
	{Name: "char", Type: reflect.TypeFor[uint16]()},
	{Name: "go.int", Type: reflect.TypeFor[int]()},
	{Name: "go.int8", Type: reflect.TypeFor[int8]()},
	{Name: "go.uint", Type: reflect.TypeFor[uint]()},
	{Name: "go.uint32", Type: reflect.TypeFor[uint32]()},
	{Name: "go.uint64", Type: reflect.TypeFor[uint64]()},
	{Name: "go.uintptr", Type: reflect.TypeFor[uintptr]()},
}

// Aliases returns the primitive alias table.
func Aliases() []Alias {
	out := make([]Alias, len(aliases))
	copy(out, aliases)

	return out
}

// IsPrimitiveKind reports whether k is a boolean or numeric kind.
func IsPrimitiveKind(k reflect.Kind) bool {
	switch k { //nolint:exhaustive
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// IsPrimitive reports whether t has a boolean or numeric kind.
func IsPrimitive(t reflect.Type) bool {
	return t != nil && IsPrimitiveKind(t.Kind())
}

// Convert boxes a decoded scalar into type t. Strings are parsed; the empty
// string yields the zero value.
func Convert(v any, t reflect.Type) (reflect.Value, error) {
	out := reflect.New(t).Elem()

	if t.Kind() == reflect.Interface {
		if v == nil {
			return out, nil
		}

		rv := reflect.ValueOf(v)
		if !rv.Type().AssignableTo(t) {
			return reflect.Value{}, fmt.Errorf("%w: %T into %s", ErrIncompatible, v, t)
		}

		out.Set(rv)

		return out, nil
	}

	if s, ok := v.(string); ok && s == "" && t.Kind() != reflect.String {
		return out, nil
	}

	var err error

	switch t.Kind() { //nolint:exhaustive
	case reflect.Bool:
		err = setBool(out, v)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		err = setInt(out, v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		err = setUint(out, v)
	case reflect.Float32, reflect.Float64:
		err = setFloat(out, v)
	case reflect.String:
		err = setString(out, v)
	default:
		err = ErrIncompatible
	}

	if err != nil {
		return reflect.Value{}, fmt.Errorf("convert %T to %s: %w", v, t, err)
	}

	return out, nil
}

func setBool(out reflect.Value, v any) error {
	switch x := v.(type) {
	case bool:
		out.SetBool(x)
	case string:
		b, err := strconv.ParseBool(x)
		if err != nil {
			return err
		}

		out.SetBool(b)
	default:
		i, ok := asInt64(v)
		if !ok {
			return ErrIncompatible
		}

		out.SetBool(i != 0)
	}

	return nil
}

func setInt(out reflect.Value, v any) error {
	var i int64

	switch x := v.(type) {
	case string:
		parsed, err := strconv.ParseInt(x, 10, out.Type().Bits())
		if err != nil {
			return err
		}

		i = parsed
	case float32, float64:
		f := reflect.ValueOf(x).Float()
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return ErrOverflow
		}

		i = int64(f)
	default:
		var ok bool

		i, ok = asInt64(v)
		if !ok {
			return ErrIncompatible
		}
	}

	if out.OverflowInt(i) {
		return ErrOverflow
	}

	out.SetInt(i)

	return nil
}

func setUint(out reflect.Value, v any) error {
	var u uint64

	switch x := v.(type) {
	case string:
		parsed, err := strconv.ParseUint(x, 10, out.Type().Bits())
		if err == nil {
			u = parsed
			break
		}

		r, size := utf8.DecodeRuneInString(x)
		if out.Kind() != reflect.Uint16 || size != len(x) || r > math.MaxUint16 {
			return err
		}

		u = uint64(r)
	case float32, float64:
		f := reflect.ValueOf(x).Float()
		if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
			return ErrOverflow
		}

		u = uint64(f)
	case uint, uint8, uint16, uint32, uint64, uintptr:
		u = reflect.ValueOf(x).Uint()
	default:
		i, ok := asInt64(v)
		if !ok {
			return ErrIncompatible
		}

		// 64-bit unsigned values travel as their two's-complement int64.
		if i < 0 && out.Type().Bits() < 64 {
			return ErrOverflow
		}

		u = uint64(i)
	}

	if out.OverflowUint(u) {
		return ErrOverflow
	}

	out.SetUint(u)

	return nil
}

func setFloat(out reflect.Value, v any) error {
	var f float64

	switch x := v.(type) {
	case string:
		parsed, err := strconv.ParseFloat(x, out.Type().Bits())
		if err != nil {
			return err
		}

		f = parsed
	case float32:
		f = float64(x)
	case float64:
		f = x
	case uint, uint8, uint16, uint32, uint64, uintptr:
		f = float64(reflect.ValueOf(x).Uint())
	default:
		i, ok := asInt64(v)
		if !ok {
			return ErrIncompatible
		}

		f = float64(i)
	}

	if !math.IsInf(f, 0) && !math.IsNaN(f) && out.OverflowFloat(f) {
		return ErrOverflow
	}

	out.SetFloat(f)

	return nil
}

func setString(out reflect.Value, v any) error {
	switch x := v.(type) {
	case string:
		out.SetString(x)
	case bool:
		out.SetString(strconv.FormatBool(x))
	case float32:
		out.SetString(strconv.FormatFloat(float64(x), 'g', -1, 32))
	case float64:
		out.SetString(strconv.FormatFloat(x, 'g', -1, 64))
	default:
		i, ok := asInt64(v)
		if !ok {
			return ErrIncompatible
		}

		out.SetString(strconv.FormatInt(i, 10))
	}

	return nil
}

func asInt64(v any) (int64, bool) {
	rv := reflect.ValueOf(v)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(rv.Uint()), true //nolint:gosec
	default:
		return 0, false
	}
}
