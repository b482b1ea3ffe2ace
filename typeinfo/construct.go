package typeinfo

import (
	"fmt"
	"math/big"
	"net/url"
	"reflect"
	"time"
)

// DefaultProvider supplies a sensible argument value for a parameter type
// when constructors are retried with defaults.
type DefaultProvider interface {
	Default(t reflect.Type) reflect.Value
}

// SensibleDefaults is the stock DefaultProvider.
type SensibleDefaults struct{}

var (
	typeOfBigInt   = reflect.TypeFor[*big.Int]()
	typeOfBigFloat = reflect.TypeFor[*big.Float]()
	typeOfURL      = reflect.TypeFor[*url.URL]()
	typeOfLocation = reflect.TypeFor[*time.Location]()
	typeOfError    = reflect.TypeFor[error]()
)

const defaultNumber = 10

// Default implements DefaultProvider.
func (SensibleDefaults) Default(t reflect.Type) reflect.Value {
	switch t {
	case typeOfTime:
		return reflect.ValueOf(time.Now())
	case typeOfBigInt:
		return reflect.ValueOf(big.NewInt(defaultNumber))
	case typeOfBigFloat:
		return reflect.ValueOf(big.NewFloat(defaultNumber))
	case typeOfURL:
		return reflect.ValueOf(&url.URL{Scheme: "http", Host: "localhost"}) //nolint:exhaustruct
	case typeOfLocation:
		return reflect.ValueOf(time.UTC)
	}

	switch t.Kind() { //nolint:exhaustive
	case reflect.Slice:
		return reflect.MakeSlice(t, 0, 0)
	case reflect.Map:
		return reflect.MakeMap(t)
	case reflect.Pointer:
		return reflect.New(t.Elem())
	default:
		return reflect.Zero(t)
	}
}

// SetDefaults replaces the provider used when constructors are retried
// with sensible defaults.
func (r *Registry) SetDefaults(p DefaultProvider) {
	r.ctorMu.Lock()
	defer r.ctorMu.Unlock()

	r.defaults = p
}

type strategy int

const (
	strategyNoArgs strategy = iota
	strategyZeros
	strategyDefaults
)

func (s strategy) String() string {
	switch s {
	case strategyNoArgs:
		return "no arguments"
	case strategyZeros:
		return "zero arguments"
	case strategyDefaults:
		return "default arguments"
	default:
		return "unknown"
	}
}

type plan struct {
	fn       reflect.Value
	strategy strategy
}

// RegisterConstructor registers fn as a way to create values of its result
// type. fn must return either T or (T, error).
func (r *Registry) RegisterConstructor(fn any) error {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return fmt.Errorf("%w: %T is not a function", ErrInvalidConstructor, fn)
	}

	ft := fv.Type()

	switch {
	case ft.NumOut() == 1:
	case ft.NumOut() == 2 && ft.Out(1) == typeOfError:
	default:
		return fmt.Errorf("%w: %s must return T or (T, error)", ErrInvalidConstructor, ft)
	}

	out := ft.Out(0)

	r.ctorMu.Lock()
	defer r.ctorMu.Unlock()

	var list []reflect.Value
	if existing, ok := r.ctors.Load(out); ok {
		list = append(list, existing.([]reflect.Value)...) //nolint:forcetypeassert
	}

	r.ctors.Store(out, append(list, fv))
	r.plans.Delete(out)
	r.plans.Delete(reflect.PointerTo(out))

	if out.Kind() == reflect.Pointer {
		r.plans.Delete(out.Elem())
	}

	return nil
}

// New creates a value of type t. Types without registered constructors get
// their zero value (a fresh allocation for pointers). Otherwise the
// registered constructors are tried: those without parameters first, then
// every constructor with zero arguments, then with sensible defaults. The
// winning constructor and strategy are cached per type.
func (r *Registry) New(t reflect.Type) (reflect.Value, error) {
	if p, ok := r.plans.Load(t); ok {
		v, err := r.invoke(p.(plan), t) //nolint:forcetypeassert
		if err == nil {
			return v, nil
		}
	}

	candidates := r.candidates(t)
	if len(candidates) == 0 {
		switch t.Kind() { //nolint:exhaustive
		case reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Invalid:
			return reflect.Value{}, errType(r.NameOf(t), ErrNotInstantiable)
		case reflect.Pointer:
			return reflect.New(t.Elem()), nil
		default:
			return reflect.New(t).Elem(), nil
		}
	}

	for _, s := range []strategy{strategyNoArgs, strategyZeros, strategyDefaults} {
		for _, fn := range candidates {
			if (fn.Type().NumIn() == 0) != (s == strategyNoArgs) {
				continue
			}

			p := plan{fn: fn, strategy: s}

			v, err := r.invoke(p, t)
			if err != nil {
				continue
			}

			r.plans.Store(t, p)

			return v, nil
		}
	}

	return reflect.Value{}, errType(r.NameOf(t), ErrNotInstantiable)
}

// Strategy returns how values of t were last created, for diagnostics.
func (r *Registry) Strategy(t reflect.Type) (string, bool) {
	p, ok := r.plans.Load(t)
	if !ok {
		return "", false
	}

	return p.(plan).strategy.String(), true //nolint:forcetypeassert
}

func (r *Registry) candidates(t reflect.Type) []reflect.Value {
	var out []reflect.Value

	keys := []reflect.Type{t, reflect.PointerTo(t)}
	if t.Kind() == reflect.Pointer {
		keys = append(keys, t.Elem())
	}

	for _, key := range keys {
		if list, ok := r.ctors.Load(key); ok {
			out = append(out, list.([]reflect.Value)...) //nolint:forcetypeassert
		}
	}

	return out
}

func (r *Registry) invoke(p plan, t reflect.Type) (out reflect.Value, err error) { //nolint:nonamedreturns
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: constructor panicked: %v", ErrNotInstantiable, rec)
		}
	}()

	ft := p.fn.Type()

	n := ft.NumIn()
	if ft.IsVariadic() {
		n--
	}

	args := make([]reflect.Value, n)
	for i := range n {
		switch p.strategy {
		case strategyDefaults:
			args[i] = r.defaults.Default(ft.In(i))
		default:
			args[i] = reflect.Zero(ft.In(i))
		}
	}

	results := p.fn.Call(args)
	if len(results) == 2 && !results[1].IsNil() {
		return reflect.Value{}, results[1].Interface().(error) //nolint:forcetypeassert
	}

	return adapt(results[0], t)
}

func adapt(v reflect.Value, t reflect.Type) (reflect.Value, error) {
	switch {
	case v.Type() == t:
		if v.Kind() == reflect.Pointer && v.IsNil() {
			return reflect.Value{}, ErrNotInstantiable
		}

		return v, nil
	case v.Kind() == reflect.Pointer && v.Type().Elem() == t:
		if v.IsNil() {
			return reflect.Value{}, ErrNotInstantiable
		}

		return v.Elem(), nil
	case t.Kind() == reflect.Pointer && t.Elem() == v.Type():
		p := reflect.New(v.Type())
		p.Elem().Set(v)

		return p, nil
	default:
		return reflect.Value{}, fmt.Errorf("%w: constructor returns %s, want %s", ErrNotInstantiable, v.Type(), t)
	}
}
