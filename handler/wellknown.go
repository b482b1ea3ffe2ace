package handler

import (
	"fmt"
	"math/big"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/tarantool/go-graphcodec/format"
	"github.com/tarantool/go-graphcodec/primitive"
	"github.com/tarantool/go-graphcodec/tree"
	"github.com/tarantool/go-graphcodec/typeinfo"
)

// NewWriters returns a writer registry holding the well-known handlers.
// Their type names are recorded in res so that tags resolve in a fresh
// process.
func NewWriters(res typeinfo.Resolver) *Writers {
	r := NewRegistry[Writer]()
	for _, wk := range wellKnown(res) {
		res.NameOf(wk.t)
		r.Add(wk.t, wk.h)
	}

	return r
}

// NewReaders returns a reader registry holding the well-known handlers.
func NewReaders(res typeinfo.Resolver) *Readers {
	r := NewRegistry[Reader]()
	for _, wk := range wellKnown(res) {
		res.NameOf(wk.t)
		r.Add(wk.t, wk.h)
	}

	return r
}

type both interface {
	Writer
	Reader
}

type registration struct {
	t reflect.Type
	h both
}

func wellKnown(res typeinfo.Resolver) []registration {
	return []registration{
		{t: reflect.TypeFor[string](), h: StringHandler{}},
		{t: reflect.TypeFor[time.Time](), h: TimeHandler{}},
		{t: reflect.TypeFor[time.Duration](), h: DurationHandler{}},
		{t: reflect.TypeFor[*time.Location](), h: LocationHandler{}},
		{t: reflect.TypeFor[*big.Int](), h: BigIntHandler{}},
		{t: reflect.TypeFor[*big.Float](), h: BigFloatHandler{}},
		{t: reflect.TypeFor[*url.URL](), h: URLHandler{}},
		{t: reflect.TypeFor[reflect.Type](), h: ClassHandler{Resolver: res}},
		{t: reflect.TypeFor[uuid.UUID](), h: UUIDHandler{}},
		{t: reflect.TypeFor[language.Tag](), h: LocaleHandler{}},
	}
}

// StringHandler handles strings: {value} or the string itself.
type StringHandler struct{}

// Write implements Writer.
func (StringHandler) Write(w format.Writer, v reflect.Value) error {
	return WriteProperty(w, "value", v.String())
}

// WriteCompact implements CompactWriter.
func (StringHandler) WriteCompact(w format.Writer, v reflect.Value) error {
	return w.String(v.String())
}

// Read implements Reader.
func (StringHandler) Read(v any, t reflect.Type) (any, error) {
	if obj, ok := v.(*tree.Object); ok {
		value, err := Field(obj, t, "value")
		if err != nil {
			return nil, err
		}

		v = value
	}

	out, err := primitive.Convert(v, reflect.TypeFor[string]())
	if err != nil {
		return nil, err
	}

	return out.Interface(), nil
}

// TimeHandler handles time.Time: {time, zone} or an RFC 3339 string.
// Integers are read as Unix milliseconds.
type TimeHandler struct{}

// Write implements Writer.
func (TimeHandler) Write(w format.Writer, v reflect.Value) error {
	ts := v.Interface().(time.Time) //nolint:forcetypeassert

	if err := WriteProperty(w, "time", ts.Format(time.RFC3339Nano)); err != nil {
		return err
	}

	return WriteProperty(w, "zone", ts.Location().String())
}

// WriteCompact implements CompactWriter.
func (TimeHandler) WriteCompact(w format.Writer, v reflect.Value) error {
	return w.String(v.Interface().(time.Time).Format(time.RFC3339Nano)) //nolint:forcetypeassert
}

// Read implements Reader.
func (TimeHandler) Read(v any, t reflect.Type) (any, error) {
	switch x := v.(type) {
	case string:
		return time.Parse(time.RFC3339Nano, x)
	case int32:
		return time.UnixMilli(int64(x)), nil
	case int64:
		return time.UnixMilli(x), nil
	case *tree.Object:
		s, err := StringField(x, t, "time")
		if err != nil {
			return nil, err
		}

		ts, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return nil, err
		}

		if zone, ok := x.Get("zone"); ok {
			if name, ok := zone.(string); ok {
				if loc, err := time.LoadLocation(name); err == nil {
					ts = ts.In(loc)
				}
			}
		}

		return ts, nil
	default:
		return nil, errUnexpected(t, v)
	}
}

// DurationHandler handles time.Duration as {value: "1h2m3s"}. Integers are
// read as nanoseconds.
type DurationHandler struct{}

// Write implements Writer.
func (DurationHandler) Write(w format.Writer, v reflect.Value) error {
	return WriteProperty(w, "value", time.Duration(v.Int()).String())
}

// Read implements Reader.
func (DurationHandler) Read(v any, t reflect.Type) (any, error) {
	if obj, ok := v.(*tree.Object); ok {
		value, err := Field(obj, t, "value")
		if err != nil {
			return nil, err
		}

		v = value
	}

	switch x := v.(type) {
	case string:
		return time.ParseDuration(x)
	case int32:
		return time.Duration(x), nil
	case int64:
		return time.Duration(x), nil
	default:
		return nil, errUnexpected(t, v)
	}
}

// LocationHandler handles *time.Location as {zone, offset}. Zones missing
// from the local database are rebuilt as fixed zones.
type LocationHandler struct{}

// Write implements Writer.
func (LocationHandler) Write(w format.Writer, v reflect.Value) error {
	loc := addressable(v).Interface().(*time.Location) //nolint:forcetypeassert
	_, offset := time.Now().In(loc).Zone()

	if err := WriteProperty(w, "zone", loc.String()); err != nil {
		return err
	}

	if err := w.PropertyName("offset"); err != nil {
		return err
	}

	return w.Int32(int32(offset)) //nolint:gosec
}

// Read implements Reader.
func (LocationHandler) Read(v any, t reflect.Type) (any, error) {
	switch x := v.(type) {
	case string:
		return time.LoadLocation(x)
	case *tree.Object:
		zone, err := StringField(x, t, "zone")
		if err != nil {
			return nil, err
		}

		loc, err := time.LoadLocation(zone)
		if err == nil {
			return loc, nil
		}

		raw, ok := x.Get("offset")
		if !ok {
			return nil, err
		}

		offset, convErr := primitive.Convert(raw, reflect.TypeFor[int]())
		if convErr != nil {
			return nil, convErr
		}

		return time.FixedZone(zone, int(offset.Int())), nil
	default:
		return nil, errUnexpected(t, v)
	}
}

// BigIntHandler handles *big.Int as decimal text.
type BigIntHandler struct{}

// Write implements Writer.
func (BigIntHandler) Write(w format.Writer, v reflect.Value) error {
	return WriteProperty(w, "value", addressable(v).Interface().(*big.Int).String()) //nolint:forcetypeassert
}

// WriteCompact implements CompactWriter.
func (BigIntHandler) WriteCompact(w format.Writer, v reflect.Value) error {
	return w.String(addressable(v).Interface().(*big.Int).String()) //nolint:forcetypeassert
}

// Read implements Reader.
func (BigIntHandler) Read(v any, t reflect.Type) (any, error) {
	switch x := v.(type) {
	case int32:
		return big.NewInt(int64(x)), nil
	case int64:
		return big.NewInt(x), nil
	}

	s, err := compactString(v, t)
	if err != nil {
		return nil, err
	}

	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrUnexpectedValue, s)
	}

	return n, nil
}

// BigFloatHandler handles *big.Float as decimal text.
type BigFloatHandler struct{}

// Write implements Writer.
func (BigFloatHandler) Write(w format.Writer, v reflect.Value) error {
	return WriteProperty(w, "value", addressable(v).Interface().(*big.Float).Text('g', -1)) //nolint:forcetypeassert
}

// WriteCompact implements CompactWriter.
func (BigFloatHandler) WriteCompact(w format.Writer, v reflect.Value) error {
	return w.String(addressable(v).Interface().(*big.Float).Text('g', -1)) //nolint:forcetypeassert
}

// Read implements Reader.
func (BigFloatHandler) Read(v any, t reflect.Type) (any, error) {
	switch x := v.(type) {
	case float64:
		return big.NewFloat(x), nil
	case int64:
		return new(big.Float).SetInt64(x), nil
	}

	s, err := compactString(v, t)
	if err != nil {
		return nil, err
	}

	f, _, err := big.ParseFloat(s, 10, 0, big.ToNearestEven)
	if err != nil {
		return nil, err
	}

	return f, nil
}

// URLHandler handles *url.URL as its string form.
type URLHandler struct{}

// Write implements Writer.
func (URLHandler) Write(w format.Writer, v reflect.Value) error {
	return WriteProperty(w, "value", addressable(v).Interface().(*url.URL).String()) //nolint:forcetypeassert
}

// WriteCompact implements CompactWriter.
func (URLHandler) WriteCompact(w format.Writer, v reflect.Value) error {
	return w.String(addressable(v).Interface().(*url.URL).String()) //nolint:forcetypeassert
}

// Read implements Reader.
func (URLHandler) Read(v any, t reflect.Type) (any, error) {
	s, err := compactString(v, t)
	if err != nil {
		return nil, err
	}

	return url.Parse(s)
}

// ClassHandler handles reflect.Type values as their type tag.
type ClassHandler struct {
	Resolver typeinfo.Resolver
}

// Write implements Writer.
func (h ClassHandler) Write(w format.Writer, v reflect.Value) error {
	return WriteProperty(w, "value", h.Resolver.NameOf(v.Interface().(reflect.Type))) //nolint:forcetypeassert
}

// WriteCompact implements CompactWriter.
func (h ClassHandler) WriteCompact(w format.Writer, v reflect.Value) error {
	return w.String(h.Resolver.NameOf(v.Interface().(reflect.Type))) //nolint:forcetypeassert
}

// Read implements Reader.
func (h ClassHandler) Read(v any, t reflect.Type) (any, error) {
	s, err := compactString(v, t)
	if err != nil {
		return nil, err
	}

	return h.Resolver.Resolve(s)
}

// UUIDHandler handles uuid.UUID as its canonical string.
type UUIDHandler struct{}

// Write implements Writer.
func (UUIDHandler) Write(w format.Writer, v reflect.Value) error {
	return WriteProperty(w, "value", v.Interface().(uuid.UUID).String()) //nolint:forcetypeassert
}

// WriteCompact implements CompactWriter.
func (UUIDHandler) WriteCompact(w format.Writer, v reflect.Value) error {
	return w.String(v.Interface().(uuid.UUID).String()) //nolint:forcetypeassert
}

// Read implements Reader.
func (UUIDHandler) Read(v any, t reflect.Type) (any, error) {
	s, err := compactString(v, t)
	if err != nil {
		return nil, err
	}

	return uuid.Parse(s)
}

// LocaleHandler handles language.Tag as {language, country, variant} or a
// BCP 47 string.
type LocaleHandler struct{}

// Write implements Writer.
func (LocaleHandler) Write(w format.Writer, v reflect.Value) error {
	tag := v.Interface().(language.Tag) //nolint:forcetypeassert
	base, _, region := tag.Raw()

	country := region.String()
	if country == "ZZ" {
		country = ""
	}

	variants := make([]string, 0, len(tag.Variants()))
	for _, variant := range tag.Variants() {
		variants = append(variants, variant.String())
	}

	if err := WriteProperty(w, "language", base.String()); err != nil {
		return err
	}

	if err := WriteProperty(w, "country", country); err != nil {
		return err
	}

	return WriteProperty(w, "variant", strings.Join(variants, "-"))
}

// WriteCompact implements CompactWriter.
func (LocaleHandler) WriteCompact(w format.Writer, v reflect.Value) error {
	return w.String(v.Interface().(language.Tag).String()) //nolint:forcetypeassert
}

// Read implements Reader.
func (LocaleHandler) Read(v any, t reflect.Type) (any, error) {
	switch x := v.(type) {
	case string:
		return language.Parse(x)
	case *tree.Object:
		parts := make([]string, 0, 3) //nolint:mnd

		lang, err := StringField(x, t, "language")
		if err != nil {
			return nil, err
		}

		parts = append(parts, lang)

		for _, name := range []string{"country", "variant"} {
			if s, _ := x.Get(name); s != nil && s != "" {
				part, ok := s.(string)
				if !ok {
					return nil, errUnexpected(t, s)
				}

				parts = append(parts, part)
			}
		}

		return language.Parse(strings.Join(parts, "-"))
	default:
		return nil, errUnexpected(t, v)
	}
}
