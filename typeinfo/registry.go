// Package typeinfo maps type tags to Go types, introspects struct fields and
// creates instances of decoded types.
package typeinfo

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/tarantool/go-graphcodec/primitive"
)

// Resolver maps type tags to Go types and back.
type Resolver interface {
	Resolve(name string) (reflect.Type, error)
	NameOf(t reflect.Type) string
}

// Registry is the default Resolver. It also keeps enum tables and
// registered constructors. Lookups do not lock.
type Registry struct {
	byName sync.Map // string -> reflect.Type
	byType sync.Map // reflect.Type -> string
	enums  sync.Map // reflect.Type -> *enum

	ctorMu   sync.Mutex
	ctors    sync.Map // reflect.Type -> []reflect.Value
	plans    sync.Map // reflect.Type -> plan
	defaults DefaultProvider
}

var (
	typeOfType = reflect.TypeFor[reflect.Type]()
	typeOfTime = reflect.TypeFor[time.Time]()

	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})

	return defaultRegistry
}

// NewRegistry returns a registry seeded with the reserved aliases and the
// common container types.
func NewRegistry() *Registry {
	r := &Registry{ //nolint:exhaustruct
		defaults: SensibleDefaults{},
	}

	for _, a := range primitive.Aliases() {
		r.Register(a.Name, a.Type)
	}

	r.Register("string", reflect.TypeFor[string]())
	r.Register("date", typeOfTime)
	r.Register("class", typeOfType)

	for _, t := range []reflect.Type{
		reflect.TypeFor[[]any](),
		reflect.TypeFor[map[string]any](),
		reflect.TypeFor[map[any]any](),
		reflect.TypeFor[[]string](),
		reflect.TypeFor[[]int64](),
		reflect.TypeFor[[]float64](),
		reflect.TypeFor[map[string]string](),
	} {
		r.Register(t.String(), t)
	}

	return r
}

// Register binds name to t in both directions, replacing earlier bindings.
func (r *Registry) Register(name string, t reflect.Type) {
	r.byName.Store(name, t)
	r.byType.Store(t, name)
}

// Alias makes name resolve to t without changing the name t is written
// under.
func (r *Registry) Alias(name string, t reflect.Type) {
	r.byName.Store(name, t)
}

// RegisterType binds name to T.
func RegisterType[T any](r *Registry, name string) {
	r.Register(name, reflect.TypeFor[T]())
}

// Resolve returns the type bound to name. Names prefixed with "*" resolve
// to pointers.
func (r *Registry) Resolve(name string) (reflect.Type, error) {
	if t, ok := r.byName.Load(name); ok {
		return t.(reflect.Type), nil //nolint:forcetypeassert
	}

	if elem, ok := strings.CutPrefix(name, "*"); ok {
		t, err := r.Resolve(elem)
		if err != nil {
			return nil, err
		}

		return reflect.PointerTo(t), nil
	}

	return nil, errType(name, ErrUnknownType)
}

// NameOf returns the tag for t, computing and recording it on first use.
func (r *Registry) NameOf(t reflect.Type) string {
	if name, ok := r.byType.Load(t); ok {
		return name.(string) //nolint:forcetypeassert
	}

	var name string

	switch {
	case t.Kind() == reflect.Pointer:
		name = "*" + r.NameOf(t.Elem())
	case t.Name() != "" && t.PkgPath() != "":
		name = t.PkgPath() + "." + t.Name()
	default:
		name = t.String()
	}

	// Distinct types may share a name (types local to functions).
	base := name
	for i := 2; ; i++ {
		existing, loaded := r.byName.LoadOrStore(name, t)
		if !loaded || existing.(reflect.Type) == t { //nolint:forcetypeassert
			break
		}

		name = fmt.Sprintf("%s#%d", base, i)
	}

	actual, _ := r.byType.LoadOrStore(t, name)

	return actual.(string) //nolint:forcetypeassert
}

type enum struct {
	names   map[string]reflect.Value
	members map[any]member
}

type member struct {
	name    string
	ordinal int
}

// RegisterEnum registers the members of an enum type. A member's name is
// its String() result and its ordinal is its position in members.
func RegisterEnum[T interface {
	comparable
	fmt.Stringer
}](r *Registry, members ...T) {
	e := &enum{
		names:   make(map[string]reflect.Value, len(members)),
		members: make(map[any]member, len(members)),
	}

	for i, m := range members {
		e.names[m.String()] = reflect.ValueOf(m)
		e.members[m] = member{name: m.String(), ordinal: i}
	}

	r.enums.Store(reflect.TypeFor[T](), e)
}

// IsEnum reports whether t was registered with RegisterEnum.
func (r *Registry) IsEnum(t reflect.Type) bool {
	_, ok := r.enums.Load(t)
	return ok
}

// EnumMember returns the member of enum t named name.
func (r *Registry) EnumMember(t reflect.Type, name string) (reflect.Value, error) {
	e, ok := r.enums.Load(t)
	if !ok {
		return reflect.Value{}, errType(r.NameOf(t), ErrUnknownType)
	}

	v, ok := e.(*enum).names[name] //nolint:forcetypeassert
	if !ok {
		return reflect.Value{}, errType(r.NameOf(t)+"."+name, ErrUnknownEnumMember)
	}

	return v, nil
}

// EnumName returns the name and ordinal of enum value v.
func (r *Registry) EnumName(v reflect.Value) (string, int, bool) {
	e, ok := r.enums.Load(v.Type())
	if !ok {
		return "", 0, false
	}

	m, ok := e.(*enum).members[v.Interface()] //nolint:forcetypeassert
	if !ok {
		return "", 0, false
	}

	return m.name, m.ordinal, true
}
