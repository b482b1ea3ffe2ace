// Package tree implements the format-agnostic Value Tree built while parsing
// a document and consumed while rebuilding native values from it.
//
// A tree consists of two node kinds, *Object and *Array. Children of a node
// are either nodes or decoded scalars (bool, integers, floats, string, nil).
package tree

import (
	"reflect"
	"strconv"

	"github.com/tarantool/go-option"
)

// Reserved keys of an object node.
const (
	// TypeKey carries the type tag. It never becomes an ordinary entry.
	TypeKey = "$type"
	// ItemsKey holds list elements or map values.
	ItemsKey = "$items"
	// KeysKey holds map keys, paired positionally with ItemsKey.
	KeysKey = "$keys"
)

// Resolver maps a type tag to a Go type.
type Resolver interface {
	Resolve(name string) (reflect.Type, error)
}

// Object is an ordered key/value mapping with an optional type tag and an
// optional bound native instance.
type Object struct {
	tag    option.Generic[string]
	keys   []string
	values map[string]any
	target reflect.Value
}

// NewObject returns an empty object node.
func NewObject() *Object {
	return &Object{
		tag:    option.None[string](),
		keys:   nil,
		values: make(map[string]any),
		target: reflect.Value{},
	}
}

// Put stores value under key. Writing a string under TypeKey sets the tag.
// Putting an existing key replaces the value and keeps its position.
func (o *Object) Put(key string, value any) {
	if key == TypeKey {
		if s, ok := value.(string); ok {
			o.tag = option.Some(s)
			return
		}
	}

	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}

	o.values[key] = value
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Keys returns entry keys in insertion order.
func (o *Object) Keys() []string {
	return o.keys
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.keys)
}

// Range calls fn for every entry in insertion order until fn returns false.
func (o *Object) Range(fn func(key string, value any) bool) {
	for _, key := range o.keys {
		if !fn(key, o.values[key]) {
			return
		}
	}
}

// Tag returns the type tag.
func (o *Object) Tag() (string, bool) {
	return o.tag.Get()
}

// SetTag sets the type tag.
func (o *Object) SetTag(tag string) {
	o.tag = option.Some(tag)
}

// Items returns the $items array, if present.
func (o *Object) Items() (*Array, bool) {
	return o.array(ItemsKey)
}

// MapKeys returns the $keys array, if present.
func (o *Object) MapKeys() (*Array, bool) {
	return o.array(KeysKey)
}

func (o *Object) array(key string) (*Array, bool) {
	v, ok := o.values[key]
	if !ok {
		return nil, false
	}

	arr, ok := v.(*Array)

	return arr, ok
}

// Indexed returns the entries of an untagged object whose keys are exactly
// "0", "1", ... in order, as an array. BSON stores a top-level array this
// way.
func (o *Object) Indexed() (*Array, bool) {
	if o.tag.IsSome() || len(o.keys) == 0 {
		return nil, false
	}

	for i, key := range o.keys {
		if key != strconv.Itoa(i) {
			return nil, false
		}
	}

	arr := NewArray()
	for _, key := range o.keys {
		arr.Add(o.values[key])
	}

	return arr, true
}

// IsList reports whether the node encodes a sequence collection.
func (o *Object) IsList(r Resolver) bool {
	if !o.Has(ItemsKey) || o.Has(KeysKey) {
		return false
	}

	return o.shapeIs(r, reflect.Slice, reflect.Array)
}

// IsMap reports whether the node encodes a map with $keys and $items.
func (o *Object) IsMap(r Resolver) bool {
	if !o.Has(ItemsKey) || !o.Has(KeysKey) {
		return false
	}

	return o.shapeIs(r, reflect.Map)
}

func (o *Object) shapeIs(r Resolver, kinds ...reflect.Kind) bool {
	var t reflect.Type

	switch {
	case o.target.IsValid():
		t = o.target.Type()
	case o.tag.IsSome() && r != nil:
		resolved, err := r.Resolve(o.tag.Unwrap())
		if err != nil {
			return false
		}

		t = resolved
	default:
		return false
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	for _, k := range kinds {
		if t.Kind() == k {
			return true
		}
	}

	return false
}

// Target returns the bound native instance; the zero Value if unbound.
func (o *Object) Target() reflect.Value {
	return o.target
}

// Bind binds the native instance being filled from this node.
func (o *Object) Bind(v reflect.Value) {
	o.target = v
}

// Clear releases all entries. The tag and bound instance are kept.
func (o *Object) Clear() {
	o.keys = nil
	o.values = make(map[string]any)
}

// Array is an ordered sequence of children.
type Array struct {
	elems  []any
	target reflect.Value
}

// NewArray returns an empty array node.
func NewArray() *Array {
	return &Array{
		elems:  nil,
		target: reflect.Value{},
	}
}

// Add appends a child.
func (a *Array) Add(v any) {
	a.elems = append(a.elems, v)
}

// Get returns the i-th child.
func (a *Array) Get(i int) any {
	return a.elems[i]
}

// Len returns the number of children.
func (a *Array) Len() int {
	return len(a.elems)
}

// Elements returns the children. The slice is owned by the node.
func (a *Array) Elements() []any {
	return a.elems
}

// Target returns the bound native instance; the zero Value if unbound.
func (a *Array) Target() reflect.Value {
	return a.target
}

// Bind binds the native instance being filled from this node.
func (a *Array) Bind(v reflect.Value) {
	a.target = v
}

// Clear releases all children.
func (a *Array) Clear() {
	a.elems = nil
}
