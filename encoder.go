package graphcodec

import (
	"cmp"
	"fmt"
	"log/slog"
	"reflect"
	"slices"

	"github.com/tarantool/go-graphcodec/format"
	"github.com/tarantool/go-graphcodec/handler"
	"github.com/tarantool/go-graphcodec/primitive"
	"github.com/tarantool/go-graphcodec/tree"
	"github.com/tarantool/go-graphcodec/typeinfo"
)

// Encoder writes Go values through a format.Writer. It keeps no per-call
// state and may be used concurrently.
type Encoder struct {
	registry        *typeinfo.Registry
	writers         *handler.Writers
	logger          *slog.Logger
	publicEnumsOnly bool
}

// NewEncoder returns an Encoder configured by opts.
func NewEncoder(opts ...Option) *Encoder {
	cfg := newConfig(opts)

	return &Encoder{
		registry:        cfg.registry,
		writers:         cfg.writers,
		logger:          cfg.logger,
		publicEnumsOnly: cfg.publicEnumsOnly,
	}
}

// Encode writes v as one document. It does not close w.
func (e *Encoder) Encode(w format.Writer, v any) error {
	s := &encodeState{
		Encoder: e,
		w:       w,
		active:  make(map[visit]struct{}),
	}

	return s.write(reflect.ValueOf(v))
}

var (
	typeOfBool    = reflect.TypeFor[bool]()
	typeOfInt64   = reflect.TypeFor[int64]()
	typeOfFloat64 = reflect.TypeFor[float64]()
	typeOfString  = reflect.TypeFor[string]()
)

// visit identifies a reference value currently being written.
type visit struct {
	ptr uintptr
	typ reflect.Type
	n   int
}

type encodeState struct {
	*Encoder

	w      format.Writer
	active map[visit]struct{}
}

func isNil(v reflect.Value) bool {
	switch v.Kind() { //nolint:exhaustive
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	default:
		return !v.IsValid()
	}
}

func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}

	return v
}

// enter marks a pointer, map or slice as being written and fails if it
// already is.
func (s *encodeState) enter(v reflect.Value) (func(), error) {
	key := visit{ptr: uintptr(v.UnsafePointer()), typ: v.Type(), n: 0}
	if v.Kind() == reflect.Slice {
		key.n = v.Len()
	}

	if _, ok := s.active[key]; ok {
		return nil, fmt.Errorf("%w: %s", ErrCycle, v.Type())
	}

	s.active[key] = struct{}{}

	return func() { delete(s.active, key) }, nil
}

// write encodes v with its type tag shown.
func (s *encodeState) write(v reflect.Value) error {
	v = unwrap(v)
	if isNil(v) {
		return s.w.Null()
	}

	t := v.Type()

	switch t.Kind() { //nolint:exhaustive
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if v.Kind() != reflect.Slice || v.Len() > 0 {
			leave, err := s.enter(v)
			if err != nil {
				return err
			}

			defer leave()
		}
	}

	if s.registry.IsEnum(t) {
		return s.enum(v)
	}

	if m, ok := s.writers.Closest(t); ok {
		return s.custom(m, v, true)
	}

	switch t.Kind() { //nolint:exhaustive
	case reflect.Pointer:
		return s.pointer(v)
	case reflect.Slice, reflect.Array:
		if t.Name() != "" {
			return s.list(v)
		}

		return s.array(v)
	case reflect.Map:
		return s.mapping(v)
	case reflect.Struct:
		return s.object(v)
	}

	if primitive.IsPrimitive(t) || t.Kind() == reflect.String {
		return s.boxed(v)
	}

	return format.NewUsageError(fmt.Errorf("%w: %s", ErrUnsupportedKind, t))
}

func (s *encodeState) pointer(v reflect.Value) error {
	elem := v.Elem()

	switch k := elem.Kind(); {
	case k == reflect.Struct:
		return s.object(v)
	case primitive.IsPrimitiveKind(k) || k == reflect.String:
		return s.boxed(v)
	default:
		return s.write(elem)
	}
}

// typed encodes v where the slot type is declared; a nil declared type
// means the slot carries no type information.
func (s *encodeState) typed(v reflect.Value, declared reflect.Type) error {
	v = unwrap(v)
	if isNil(v) {
		return s.w.Null()
	}

	t := v.Type()
	if t == typeOfString {
		return s.w.String(v.String())
	}

	if s.registry.IsEnum(t) {
		return s.write(v)
	}

	if m, ok := s.writers.Closest(t); ok {
		return s.custom(m, v, declared == nil || t != declared)
	}

	return s.write(v)
}

// element encodes a list element, a map key or a map value.
func (s *encodeState) element(v reflect.Value) error {
	v = unwrap(v)
	if v.IsValid() && primitive.IsPrimitive(v.Type()) && !s.registry.IsEnum(v.Type()) {
		return s.scalar(v)
	}

	return s.typed(v, nil)
}

func (s *encodeState) custom(m handler.Match[handler.Writer], v reflect.Value, forced bool) error {
	if cw, ok := m.Handler.(handler.CompactWriter); ok && !forced {
		return cw.WriteCompact(s.w, v)
	}

	tagType := v.Type()
	if m.Type.Kind() == reflect.Interface {
		tagType = m.Type
	}

	if m.Type != v.Type() {
		s.logger.Debug("using nearest handler", slog.String("type", v.Type().String()),
			slog.String("registered", m.Type.String()))
	}

	if err := s.w.BeginObject(s.registry.NameOf(tagType)); err != nil {
		return err
	}

	if err := m.Handler.Write(s.w, v); err != nil {
		return err
	}

	return s.w.EndObject()
}

// scalar writes a value of a primitive or string kind without a tag.
func (s *encodeState) scalar(v reflect.Value) error {
	switch v.Kind() { //nolint:exhaustive
	case reflect.Bool:
		return s.w.Bool(v.Bool())
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return s.w.Int32(int32(v.Int())) //nolint:gosec
	case reflect.Int, reflect.Int64:
		return s.w.Int64(v.Int())
	case reflect.Uint8, reflect.Uint16:
		return s.w.Int32(int32(v.Uint())) //nolint:gosec
	case reflect.Uint, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return s.w.Int64(int64(v.Uint())) //nolint:gosec
	case reflect.Float32:
		return s.w.Float32(float32(v.Float()))
	case reflect.Float64:
		return s.w.Float64(v.Float())
	case reflect.String:
		return s.w.String(v.String())
	default:
		return format.NewUsageError(fmt.Errorf("%w: %s", ErrUnsupportedKind, v.Type()))
	}
}

// boxed writes a scalar as {$type: alias, value: x}.
func (s *encodeState) boxed(v reflect.Value) error {
	if err := s.w.BeginObject(s.registry.NameOf(v.Type())); err != nil {
		return err
	}

	if err := s.w.PropertyName("value"); err != nil {
		return err
	}

	if err := s.scalar(reflect.Indirect(v)); err != nil {
		return err
	}

	return s.w.EndObject()
}

func (s *encodeState) enum(v reflect.Value) error {
	name, ordinal, ok := s.registry.EnumName(v)
	if !ok {
		return fmt.Errorf("%w: %v of %s", typeinfo.ErrUnknownEnumMember, v.Interface(), v.Type())
	}

	if err := s.w.BeginObject(s.registry.NameOf(v.Type())); err != nil {
		return err
	}

	if err := s.w.PropertyName("name"); err != nil {
		return err
	}

	if err := s.w.String(name); err != nil {
		return err
	}

	if !s.publicEnumsOnly {
		if err := s.w.PropertyName("ordinal"); err != nil {
			return err
		}

		if err := s.w.Int32(int32(ordinal)); err != nil { //nolint:gosec
			return err
		}
	}

	return s.w.EndObject()
}

func (s *encodeState) array(v reflect.Value) error {
	if err := s.w.BeginArray(); err != nil {
		return err
	}

	declared := v.Type().Elem()
	direct := primitive.IsPrimitive(declared) && !s.registry.IsEnum(declared)

	for i := range v.Len() {
		elem := v.Index(i)

		var err error

		switch natural := unwrap(elem); {
		case direct:
			err = s.scalar(elem)
		case natural.IsValid() && isNatural(natural.Type()):
			err = s.scalar(natural)
		default:
			err = s.typed(elem, declared)
		}

		if err != nil {
			return err
		}
	}

	return s.w.EndArray()
}

// isNatural reports whether every reader decodes values of t back into t.
func isNatural(t reflect.Type) bool {
	return t == typeOfBool || t == typeOfInt64 || t == typeOfFloat64 || t == typeOfString
}

func (s *encodeState) list(v reflect.Value) error {
	if err := s.w.BeginList(s.registry.NameOf(v.Type())); err != nil {
		return err
	}

	for i := range v.Len() {
		if err := s.element(v.Index(i)); err != nil {
			return err
		}
	}

	return s.w.EndList()
}

func (s *encodeState) mapping(v reflect.Value) error {
	keys := v.MapKeys()
	slices.SortFunc(keys, compareKeys)

	if err := s.w.BeginMap(s.registry.NameOf(v.Type())); err != nil {
		return err
	}

	if v.Type().Key().Kind() == reflect.String && !hasReservedKey(keys) {
		for _, key := range keys {
			if err := s.w.PropertyName(key.String()); err != nil {
				return err
			}

			if err := s.element(v.MapIndex(key)); err != nil {
				return err
			}
		}

		return s.w.EndMap()
	}

	if err := s.w.BeginKeys(); err != nil {
		return err
	}

	for _, key := range keys {
		if err := s.element(key); err != nil {
			return err
		}
	}

	if err := s.w.EndKeys(); err != nil {
		return err
	}

	if err := s.w.BeginItems(); err != nil {
		return err
	}

	for _, key := range keys {
		if err := s.element(v.MapIndex(key)); err != nil {
			return err
		}
	}

	if err := s.w.EndItems(); err != nil {
		return err
	}

	return s.w.EndMap()
}

func hasReservedKey(keys []reflect.Value) bool {
	for _, key := range keys {
		switch key.String() {
		case tree.TypeKey, tree.KeysKey, tree.ItemsKey:
			return true
		}
	}

	return false
}

// compareKeys orders map keys of any kind deterministically.
func compareKeys(a, b reflect.Value) int {
	a, b = unwrap(a), unwrap(b)

	if !a.IsValid() || !b.IsValid() {
		return cmp.Compare(btoi(a.IsValid()), btoi(b.IsValid()))
	}

	if a.Kind() != b.Kind() {
		return cmp.Compare(a.Kind(), b.Kind())
	}

	switch a.Kind() { //nolint:exhaustive
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.Bool:
		return cmp.Compare(btoi(a.Bool()), btoi(b.Bool()))
	default:
		return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
	}
}

func btoi(b bool) int {
	if b {
		return 1
	}

	return 0
}

// object writes a struct, or a pointer to one, field by field.
func (s *encodeState) object(v reflect.Value) error {
	if err := s.w.BeginObject(s.registry.NameOf(v.Type())); err != nil {
		return err
	}

	sv := reflect.Indirect(v)

	for _, f := range typeinfo.Fields(sv.Type()).Fields {
		if f.Transient {
			continue
		}

		fv := f.Get(sv)
		if !fv.IsValid() {
			continue
		}

		if err := s.w.PropertyName(f.Name); err != nil {
			return err
		}

		if err := s.field(fv, f.Type); err != nil {
			return fmt.Errorf("field %s.%s: %w", sv.Type(), f.Name, err)
		}
	}

	return s.w.EndObject()
}

func (s *encodeState) field(v reflect.Value, declared reflect.Type) error {
	if primitive.IsPrimitive(declared) && !s.registry.IsEnum(declared) {
		return s.scalar(v)
	}

	return s.typed(v, declared)
}
