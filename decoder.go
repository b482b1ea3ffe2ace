package graphcodec

import (
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"

	"github.com/tarantool/go-graphcodec/format"
	"github.com/tarantool/go-graphcodec/handler"
	"github.com/tarantool/go-graphcodec/primitive"
	"github.com/tarantool/go-graphcodec/tree"
	"github.com/tarantool/go-graphcodec/typeinfo"
)

// Decoder rebuilds Go values from documents. It keeps no per-call state
// and may be used concurrently.
type Decoder struct {
	registry *typeinfo.Registry
	readers  *handler.Readers
	logger   *slog.Logger
}

// NewDecoder returns a Decoder configured by opts.
func NewDecoder(opts ...Option) *Decoder {
	cfg := newConfig(opts)

	return &Decoder{
		registry: cfg.registry,
		readers:  cfg.readers,
		logger:   cfg.logger,
	}
}

// Parse reads one document into a Value Tree without materializing it. The
// result is a *tree.Object, a *tree.Array or nil for a null document.
func (d *Decoder) Parse(r format.Reader) (any, error) {
	h := &documentHandler{BaseHandler: format.BaseHandler{}, reader: r, root: nil, seen: false}
	if err := r.Parse(h); err != nil {
		return nil, err
	}

	return h.root, nil
}

// Decode reads one document and returns the value it describes.
func (d *Decoder) Decode(r format.Reader) (any, error) {
	var out any
	if err := d.DecodeInto(r, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// DecodeInto reads one document into the value out points to.
func (d *Decoder) DecodeInto(r format.Reader, out any) error {
	target := reflect.ValueOf(out)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return fmt.Errorf("%w: %T", ErrInvalidTarget, out)
	}

	root, err := d.Parse(r)
	if err != nil {
		return err
	}

	return d.Materialize(root, target.Elem())
}

// Materialize stores the value described by a Value Tree (or a scalar) into
// dst, which must be settable.
func (d *Decoder) Materialize(root any, dst reflect.Value) error {
	m := &materializer{Decoder: d, work: nil}

	// A top-level BSON array arrives as a document keyed by index.
	if obj, ok := root.(*tree.Object); ok && dst.Kind() == reflect.Interface {
		if arr, ok := obj.Indexed(); ok {
			root = arr
		}
	}

	if err := m.place(root, dst.Type(), "$", setter(dst, "$")); err != nil {
		return err
	}

	return m.run()
}

// task is one unit of the materialize worklist: either a node whose
// children must be resolved or a commit storing a finished value.
type task struct {
	node   any
	commit func() error
}

type materializer struct {
	*Decoder

	work []task
}

func (m *materializer) run() error {
	for len(m.work) > 0 {
		t := m.work[len(m.work)-1]
		m.work = m.work[:len(m.work)-1]

		var err error
		if t.commit != nil {
			err = t.commit()
		} else {
			err = m.fill(t.node)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// store receives the final value of a slot.
type store func(v reflect.Value) error

// setter returns a store assigning into dst.
func setter(dst reflect.Value, field string) store {
	return func(v reflect.Value) error {
		adapted, err := adapt(v, dst.Type(), field)
		if err != nil {
			return err
		}

		dst.Set(adapted)

		return nil
	}
}

// adapt converts v to type t: pointers are taken or followed and
// convertible types converted.
func adapt(v reflect.Value, t reflect.Type, field string) (reflect.Value, error) {
	switch {
	case !v.IsValid():
		return reflect.Zero(t), nil
	case v.Type().AssignableTo(t):
		return v, nil
	case v.Kind() == reflect.Pointer && !v.IsNil() && v.Type().Elem().AssignableTo(t):
		return v.Elem(), nil
	case t.Kind() == reflect.Pointer && v.Type().AssignableTo(t.Elem()):
		p := reflect.New(t.Elem())
		p.Elem().Set(v)

		return p, nil
	case v.Type().ConvertibleTo(t) && sameShape(v.Type(), t):
		return v.Convert(t), nil
	case isScalar(v) && (primitive.IsPrimitive(t) || t.Kind() == reflect.String):
		out, err := primitive.Convert(v.Interface(), t)
		if err != nil {
			return reflect.Value{}, errConversion(field, t, v.Interface(), err)
		}

		return out, nil
	default:
		return reflect.Value{}, errConversion(field, t, describeValue(v), nil)
	}
}

// sameShape rejects conversions that reinterpret, such as int to string.
func sameShape(from, to reflect.Type) bool {
	if from.Kind() == to.Kind() {
		return true
	}

	return primitive.IsPrimitive(from) && primitive.IsPrimitive(to) &&
		from.Kind() != reflect.Bool && to.Kind() != reflect.Bool
}

func isScalar(v reflect.Value) bool {
	return primitive.IsPrimitive(v.Type()) || v.Kind() == reflect.String
}

func describeValue(v reflect.Value) any {
	if v.CanInterface() {
		return v.Interface()
	}

	return v.Type().String()
}

func isBlank(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

// place resolves v for a slot of type t. Scalars and handler results are
// stored at once; tree nodes are instantiated, queued for filling and
// stored by a commit once their subtree is complete.
func (m *materializer) place(v any, t reflect.Type, field string, set store) error {
	if v == nil {
		return set(reflect.Zero(t))
	}

	obj, isObject := v.(*tree.Object)
	_, isArray := v.(*tree.Array)
	isNode := isObject || isArray

	if !isNode && primitive.IsPrimitive(t) {
		out, err := primitive.Convert(v, t)
		if err != nil {
			return errConversion(field, t, v, err)
		}

		return set(out)
	}

	var tagType reflect.Type

	if isObject {
		if tag, ok := obj.Tag(); ok {
			resolved, err := m.registry.Resolve(tag)
			if err != nil {
				return err
			}

			tagType = resolved
		}
	}

	if handled, err := m.custom(v, t, tagType, field, set); handled || err != nil {
		return err
	}

	if isNode {
		return m.instantiate(v, t, tagType, field, set)
	}

	if isBlank(v) && t.Kind() != reflect.String && t.Kind() != reflect.Interface {
		return set(reflect.Zero(t))
	}

	return set(reflect.ValueOf(v))
}

// custom applies the nearest reader handler for the node's tag or, for
// a typed slot, the slot type.
func (m *materializer) custom(v any, t, tagType reflect.Type, field string, set store) (bool, error) {
	lookup := tagType
	if lookup == nil && t.Kind() != reflect.Interface {
		lookup = t
	}

	if lookup == nil {
		return false, nil
	}

	match, ok := m.readers.Closest(lookup)
	if !ok {
		return false, nil
	}

	if match.Type != lookup {
		m.logger.Debug("using nearest handler", slog.String("type", lookup.String()),
			slog.String("registered", match.Type.String()))
	}

	out, err := match.Handler.Read(v, lookup)
	if err != nil {
		return true, fmt.Errorf("%s: %w", field, err)
	}

	return true, set(reflect.ValueOf(out))
}

// instantiate creates the native value for a tree node and queues it.
func (m *materializer) instantiate(node any, t, tagType reflect.Type, field string, set store) error {
	concrete := tagType
	if concrete == nil {
		concrete = m.untagged(node, t)
	}

	if concrete == nil {
		return errConversion(field, t, node, nil)
	}

	base := concrete
	for base.Kind() == reflect.Pointer {
		base = base.Elem()
	}

	if obj, ok := node.(*tree.Object); ok {
		switch {
		case m.registry.IsEnum(base):
			return m.enumMember(obj, concrete, base, field, set)
		case primitive.IsPrimitive(base) || base.Kind() == reflect.String:
			return m.unbox(obj, concrete, base, field, set)
		}
	}

	switch base.Kind() { //nolint:exhaustive
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
	default:
		return errConversion(field, t, node, fmt.Errorf("cannot fill %s", concrete))
	}

	val, err := m.registry.New(concrete)
	if err != nil {
		return err
	}

	if strategy, ok := m.registry.Strategy(concrete); ok {
		m.logger.Debug("constructed", slog.String("type", concrete.String()), slog.String("strategy", strategy))
	}

	fill := val
	if fill.Kind() != reflect.Pointer {
		holder := reflect.New(concrete)
		holder.Elem().Set(val)
		val = holder.Elem()
		fill = val
	}

	for fill.Kind() == reflect.Pointer {
		if fill.IsNil() {
			fill.Set(reflect.New(fill.Type().Elem()))
		}

		fill = fill.Elem()
	}

	switch n := node.(type) {
	case *tree.Object:
		n.Bind(fill)
	case *tree.Array:
		n.Bind(fill)
	}

	m.work = append(m.work,
		task{node: nil, commit: func() error { return set(val) }},
		task{node: node, commit: nil})

	return nil
}

// untagged picks the type of a node without a tag from its slot.
func (m *materializer) untagged(node any, t reflect.Type) reflect.Type {
	if t.Kind() != reflect.Interface {
		return t
	}

	switch n := node.(type) {
	case *tree.Array:
		return reflect.TypeFor[[]any]()
	case *tree.Object:
		switch {
		case n.Has(tree.KeysKey):
			return reflect.TypeFor[map[any]any]()
		case n.Has(tree.ItemsKey):
			return reflect.TypeFor[[]any]()
		default:
			return reflect.TypeFor[map[string]any]()
		}
	}

	return nil
}

func (m *materializer) unbox(obj *tree.Object, concrete, base reflect.Type, field string, set store) error {
	raw, err := handler.Field(obj, concrete, "value")
	if err != nil {
		return err
	}

	out, err := primitive.Convert(raw, base)
	if err != nil {
		return errConversion(field, base, raw, err)
	}

	return set(pointTo(out, concrete))
}

// pointTo wraps v in pointers until it has type t.
func pointTo(v reflect.Value, t reflect.Type) reflect.Value {
	if t.Kind() != reflect.Pointer {
		return v
	}

	inner := pointTo(v, t.Elem())
	p := reflect.New(t.Elem())
	p.Elem().Set(inner)

	return p
}

func (m *materializer) enumMember(obj *tree.Object, concrete, base reflect.Type, field string, set store) error {
	name, err := handler.StringField(obj, concrete, "name")
	if err != nil {
		return err
	}

	out, err := m.registry.EnumMember(base, name)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}

	return set(pointTo(out, concrete))
}

// fill resolves the children of a bound node and releases them.
func (m *materializer) fill(node any) error {
	switch n := node.(type) {
	case *tree.Array:
		defer n.Clear()
		return m.elements(n.Elements(), n.Target())
	case *tree.Object:
		defer n.Clear()
		return m.object(n, n.Target())
	default:
		return nil
	}
}

func (m *materializer) object(obj *tree.Object, dst reflect.Value) error {
	switch {
	case obj.IsList(m.registry):
		items, ok := obj.Items()
		if !ok {
			return errConversion(m.registry.NameOf(dst.Type()), dst.Type(), obj, nil)
		}

		return m.elements(items.Elements(), dst)
	case obj.IsMap(m.registry):
		return m.mapping(obj, dst)
	}

	switch dst.Kind() { //nolint:exhaustive
	case reflect.Slice, reflect.Array:
		if arr, ok := obj.Indexed(); ok {
			return m.elements(arr.Elements(), dst)
		}

		if obj.Len() > 0 {
			return errConversion(m.registry.NameOf(dst.Type()), dst.Type(), obj, nil)
		}

		return m.elements(nil, dst)
	case reflect.Map:
		return m.mapping(obj, dst)
	case reflect.Struct:
		return m.fields(obj, dst)
	default:
		return errConversion(m.registry.NameOf(dst.Type()), dst.Type(), obj, nil)
	}
}

func (m *materializer) elements(elems []any, dst reflect.Value) error {
	switch dst.Kind() { //nolint:exhaustive
	case reflect.Slice:
		if dst.Len() != len(elems) {
			dst.Set(reflect.MakeSlice(dst.Type(), len(elems), len(elems)))
		}
	case reflect.Array:
		if dst.Len() < len(elems) {
			return errConversion(m.registry.NameOf(dst.Type()), dst.Type(), len(elems), fmt.Errorf("too many elements"))
		}
	default:
		return errConversion(m.registry.NameOf(dst.Type()), dst.Type(), elems, nil)
	}

	elemType := dst.Type().Elem()

	for i, e := range elems {
		field := "[" + strconv.Itoa(i) + "]"
		if err := m.place(e, elemType, field, setter(dst.Index(i), field)); err != nil {
			return err
		}
	}

	return nil
}

func (m *materializer) mapping(obj *tree.Object, dst reflect.Value) error {
	if dst.IsNil() {
		dst.Set(reflect.MakeMap(dst.Type()))
	}

	keys, hasKeys := obj.MapKeys()
	items, hasItems := obj.Items()

	if hasKeys != hasItems {
		return format.NewStructuralError(format.ErrKeysWithoutItems)
	}

	if hasKeys {
		if keys.Len() != items.Len() {
			return format.NewStructuralError(fmt.Errorf("%w: %d keys, %d items",
				format.ErrKeysItemsLength, keys.Len(), items.Len()))
		}

		for i := range keys.Len() {
			if err := m.entry(dst, keys.Get(i), items.Get(i), "["+strconv.Itoa(i)+"]"); err != nil {
				return err
			}
		}

		return nil
	}

	var err error

	obj.Range(func(key string, value any) bool {
		err = m.entry(dst, key, value, key)
		return err == nil
	})

	return err
}

// entry resolves one key/value pair and inserts it once both are complete.
func (m *materializer) entry(dst reflect.Value, key, value any, field string) error {
	mt := dst.Type()
	k := reflect.New(mt.Key()).Elem()
	v := reflect.New(mt.Elem()).Elem()

	m.work = append(m.work, task{node: nil, commit: func() error {
		dst.SetMapIndex(k, v)
		return nil
	}})

	if err := m.place(key, mt.Key(), field, setter(k, field)); err != nil {
		return err
	}

	return m.place(value, mt.Elem(), field, setter(v, field))
}

func (m *materializer) fields(obj *tree.Object, dst reflect.Value) error {
	meta := typeinfo.Fields(dst.Type())

	var err error

	obj.Range(func(key string, value any) bool {
		f, ok := meta.Lookup(key)
		if !ok || f.Transient {
			m.logger.Debug("skipping unknown field", slog.String("type", dst.Type().String()), slog.String("field", key))
			return true
		}

		slot := f.Settable(dst)
		err = m.place(value, f.Type, key, setter(slot, key))

		return err == nil
	})

	return err
}
