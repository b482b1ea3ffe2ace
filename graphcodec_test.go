package graphcodec_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"math/big"
	"net/url"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	graphcodec "github.com/tarantool/go-graphcodec"
	"github.com/tarantool/go-graphcodec/format"
	"github.com/tarantool/go-graphcodec/format/json"
	"github.com/tarantool/go-graphcodec/handler"
	gcTesting "github.com/tarantool/go-graphcodec/internal/testing"
	"github.com/tarantool/go-graphcodec/tree"
	"github.com/tarantool/go-graphcodec/typeinfo"
)

type Color int

const (
	Red Color = iota
	Green
	Blue
)

func (c Color) String() string {
	switch c {
	case Red:
		return "RED"
	case Green:
		return "GREEN"
	case Blue:
		return "BLUE"
	default:
		return "UNKNOWN"
	}
}

type Point struct {
	X, Y int
}

type Address struct {
	City string
	Zip  int32
}

type Person struct {
	Name    string
	Age     int
	Height  float64
	Tags    []string
	Scores  map[string]int64
	Meta    map[int]string
	Home    *Address
	Friends []*Person
	Color   Color
	Any     any
}

func newRegistry() *typeinfo.Registry {
	r := typeinfo.NewRegistry()
	typeinfo.RegisterEnum(r, Red, Green, Blue)
	typeinfo.RegisterType[Color](r, "color")
	typeinfo.RegisterType[Point](r, "pt")

	return r
}

func TestFormat_String(t *testing.T) {
	t.Parallel()

	for _, f := range graphcodec.Formats() {
		parsed, err := graphcodec.ParseFormat(strings.ToUpper(f.String()))
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}

	assert.Equal(t, "Format(9)", graphcodec.Format(9).String())

	_, err := graphcodec.ParseFormat("xml")
	require.ErrorIs(t, err, graphcodec.ErrUnknownFormat)

	_, err = graphcodec.Format(9).NewWriter(&bytes.Buffer{})
	require.ErrorIs(t, err, graphcodec.ErrUnknownFormat)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	in := Person{
		Name:    "Ada",
		Age:     36,
		Height:  1.75,
		Tags:    []string{"math", "engines"},
		Scores:  map[string]int64{"algebra": 90, "logic": 95},
		Meta:    map[int]string{2: "two", 1: "one"},
		Home:    &Address{City: "London", Zip: 1815},
		Friends: nil,
		Color:   Green,
		Any:     []any{int64(1), "x", true, nil},
	}

	for _, f := range graphcodec.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()

			opt := graphcodec.WithRegistry(newRegistry())

			data, err := graphcodec.Marshal(f, in, opt)
			require.NoError(t, err)

			var out Person
			require.NoError(t, graphcodec.Unmarshal(f, data, &out, opt))
			assert.Equal(t, in, out)
		})
	}
}

func TestMarshal_CBOR(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name     string
		value    any
		expected string
	}{
		{name: "boxed long", value: int64(42), expected: "BF 65 2474797065 64 6C6F6E67 65 76616C7565 18 2A FF"},
		{name: "null", value: nil, expected: "F6"},
		{name: "longs", value: []int64{19, 20}, expected: "9F 13 14 FF"},
		{name: "empty", value: []int64{}, expected: "9F FF"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := graphcodec.Marshal(graphcodec.CBOR, tt.value, graphcodec.WithRegistry(newRegistry()))
			require.NoError(t, err)
			assert.Equal(t, strings.ReplaceAll(tt.expected, " ", ""), gcTesting.Hex(data))
		})
	}
}

func TestMarshal_JSON(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name     string
		value    any
		opts     []graphcodec.Option
		expected string
	}{
		{
			name:     "struct",
			value:    Point{X: 1, Y: 2},
			expected: `{"$type":"pt","X":1,"Y":2}`,
		},
		{
			name:     "pointer to struct",
			value:    &Point{X: 1, Y: 2},
			expected: `{"$type":"*pt","X":1,"Y":2}`,
		},
		{
			name:     "boxed string",
			value:    "hi",
			expected: `{"$type":"string","value":"hi"}`,
		},
		{
			name:     "enum",
			value:    Green,
			expected: `{"$type":"color","name":"GREEN","ordinal":1}`,
		},
		{
			name:     "public enum",
			value:    Blue,
			opts:     []graphcodec.Option{graphcodec.WithPublicEnumsOnly()},
			expected: `{"$type":"color","name":"BLUE"}`,
		},
		{
			name:     "string keys",
			value:    map[string]int{"b": 2, "a": 1},
			expected: `{"$type":"map[string]int","a":1,"b":2}`,
		},
		{
			name:     "reserved key",
			value:    map[string]int{"$type": 1},
			expected: `{"$type":"map[string]int","$keys":["$type"],"$items":[1]}`,
		},
		{
			name:     "non-string keys",
			value:    map[int]bool{3: true, 1: false},
			expected: `{"$type":"map[int]bool","$keys":[1,3],"$items":[false,true]}`,
		},
		{
			name:     "mixed array",
			value:    []any{int64(1), "a", Point{X: 3, Y: 4}, int32(5)},
			expected: `[1,"a",{"$type":"pt","X":3,"Y":4},{"$type":"int","value":5}]`,
		},
		{
			name:     "typed handler slot",
			value:    struct{ ID uuid.UUID }{ID: uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")},
			expected: `{"$type":"struct { ID uuid.UUID }","ID":"6ba7b810-9dad-11d1-80b4-00c04fd430c8"}`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := append([]graphcodec.Option{graphcodec.WithRegistry(newRegistry())}, tt.opts...)

			data, err := graphcodec.Marshal(graphcodec.JSON, tt.value, opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}

func TestUnmarshal_Untyped(t *testing.T) {
	t.Parallel()

	opt := graphcodec.WithRegistry(newRegistry())

	for _, tt := range []struct {
		name     string
		input    string
		expected any
	}{
		{name: "null", input: `null`, expected: nil},
		{name: "boxed long", input: `{"$type":"long","value":42}`, expected: int64(42)},
		{name: "boxed string", input: `{"$type":"string","value":"hi"}`, expected: "hi"},
		{name: "enum", input: `{"$type":"color","name":"BLUE","ordinal":2}`, expected: Blue},
		{name: "struct", input: `{"$type":"pt","X":1,"Y":"2"}`, expected: Point{X: 1, Y: 2}},
		{name: "pointer", input: `{"$type":"*pt","X":1}`, expected: &Point{X: 1, Y: 0}},
		{name: "array", input: `[1,"a",null,[true]]`, expected: []any{int64(1), "a", nil, []any{true}}},
		{name: "untagged object", input: `{"a":1}`, expected: map[string]any{"a": int64(1)}},
		{name: "index-keyed root", input: `{"0":"a","1":"b"}`, expected: []any{"a", "b"}},
		{name: "index-keyed out of order", input: `{"1":"a","0":"b"}`, expected: map[string]any{"1": "a", "0": "b"}},
		{name: "untagged keys", input: `{"$keys":[1],"$items":["x"]}`, expected: map[any]any{int64(1): "x"}},
		{name: "untagged items", input: `{"$items":[1]}`, expected: []any{int64(1)}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := json.NewReader(strings.NewReader(tt.input))

			got, err := graphcodec.NewDecoder(opt).Decode(r)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestUnmarshal_Errors(t *testing.T) {
	t.Parallel()

	opt := graphcodec.WithRegistry(newRegistry())

	for _, tt := range []struct {
		name     string
		input    string
		target   any
		expected error
	}{
		{name: "top-level scalar", input: `42`, target: new(any), expected: format.ErrNotContainer},
		{name: "unknown tag", input: `{"$type":"no.such.Type"}`, target: new(any), expected: typeinfo.ErrUnknownType},
		{name: "conversion", input: `{"$type":"pt","X":"abc"}`, target: new(Point), expected: graphcodec.ErrConversion},
		{name: "keys without items", input: `{"$keys":[1]}`, target: new(map[int]string), expected: format.ErrKeysWithoutItems},
		{
			name:     "keys and items lengths",
			input:    `{"$keys":[1,2],"$items":["a"]}`,
			target:   new(map[int]string),
			expected: format.ErrKeysItemsLength,
		},
		{name: "unknown enum member", input: `{"$type":"color","name":"PINK"}`, target: new(Color), expected: typeinfo.ErrUnknownEnumMember},
		{name: "too many elements", input: `[1,2,3]`, target: new([2]int), expected: graphcodec.ErrConversion},
		{name: "invalid target", input: `null`, target: Point{}, expected: graphcodec.ErrInvalidTarget},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := graphcodec.Unmarshal(graphcodec.JSON, []byte(tt.input), tt.target, opt)
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestUnmarshal_TopLevelScalar(t *testing.T) {
	t.Parallel()

	var out any

	err := graphcodec.Unmarshal(graphcodec.CBOR, gcTesting.MustHex(t, "18 2A"), &out)
	require.ErrorIs(t, err, format.ErrUnexpectedTopLevel)

	var structural format.StructuralError
	require.ErrorAs(t, err, &structural)

	require.NoError(t, graphcodec.Unmarshal(graphcodec.CBOR, gcTesting.MustHex(t, "F6"), &out))
	assert.Nil(t, out)
}

func TestUnmarshal_ConversionError(t *testing.T) {
	t.Parallel()

	var p Point

	err := graphcodec.Unmarshal(graphcodec.JSON, []byte(`{"$type":"pt","X":true}`), &p,
		graphcodec.WithRegistry(newRegistry()))

	var convErr graphcodec.ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "X", convErr.Field)
	assert.Equal(t, true, convErr.Value)
}

type Base struct {
	ID   int64
	Name string
}

type Employee struct {
	Base

	Name   string
	Salary int64  `codec:"salary"`
	Secret string `codec:"-"`
}

func TestRoundTrip_Embedded(t *testing.T) {
	t.Parallel()

	opt := graphcodec.WithRegistry(newRegistry())
	in := Employee{Base: Base{ID: 7, Name: "inner"}, Name: "outer", Salary: 100, Secret: "s"}

	data, err := graphcodec.Marshal(graphcodec.JSON, in, opt)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Secret")
	assert.Contains(t, string(data), `"salary":100`)

	var out Employee
	require.NoError(t, graphcodec.Unmarshal(graphcodec.JSON, data, &out, opt))

	in.Secret = ""
	assert.Equal(t, in, out)
}

type Animal interface {
	Sound() string
}

type Dog struct {
	Name string
}

func (d Dog) Sound() string { return d.Name + " barks" }

type Zoo struct {
	Pet  Animal
	When any
	Tags map[string]any
}

func TestRoundTrip_Polymorphic(t *testing.T) {
	t.Parallel()

	opt := graphcodec.WithRegistry(newRegistry())
	when := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	in := Zoo{
		Pet:  Dog{Name: "rex"},
		When: when,
		Tags: map[string]any{"age": int64(3), "where": &Point{X: 1, Y: 2}},
	}

	for _, f := range graphcodec.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()

			data, err := graphcodec.Marshal(f, in, opt)
			require.NoError(t, err)

			var out Zoo
			require.NoError(t, graphcodec.Unmarshal(f, data, &out, opt))

			assert.Equal(t, in.Pet, out.Pet)
			assert.Equal(t, in.Tags, out.Tags)
			require.IsType(t, time.Time{}, out.When)
			assert.True(t, when.Equal(out.When.(time.Time))) //nolint:forcetypeassert
		})
	}
}

func TestRoundTrip_TopLevelArrays(t *testing.T) {
	t.Parallel()

	opt := graphcodec.WithRegistry(newRegistry())

	for _, f := range graphcodec.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()

			data, err := graphcodec.Marshal(f, []int{1, 2}, opt)
			require.NoError(t, err)

			var ints []int
			require.NoError(t, graphcodec.Unmarshal(f, data, &ints, opt))
			assert.Equal(t, []int{1, 2}, ints)

			points := []Point{{X: 1, Y: 2}, {X: 3, Y: 4}}

			data, err = graphcodec.Marshal(f, points, opt)
			require.NoError(t, err)

			var gotPoints []Point
			require.NoError(t, graphcodec.Unmarshal(f, data, &gotPoints, opt))
			assert.Equal(t, points, gotPoints)

			var fixed [2]Point
			require.NoError(t, graphcodec.Unmarshal(f, data, &fixed, opt))
			assert.Equal(t, [2]Point{{X: 1, Y: 2}, {X: 3, Y: 4}}, fixed)

			data, err = graphcodec.Marshal(f, []string{"a", "b"}, opt)
			require.NoError(t, err)

			var anything any
			require.NoError(t, graphcodec.Unmarshal(f, data, &anything, opt))
			assert.Equal(t, []any{"a", "b"}, anything)
		})
	}
}

// soundHandler handles every Animal through its Sound.
type soundHandler struct{}

func (soundHandler) Write(w format.Writer, v reflect.Value) error {
	return handler.WriteProperty(w, "sound", v.Interface().(Animal).Sound()) //nolint:forcetypeassert
}

func (soundHandler) Read(v any, t reflect.Type) (any, error) {
	obj, ok := v.(*tree.Object)
	if !ok {
		return nil, fmt.Errorf("unexpected %T", v)
	}

	sound, err := handler.StringField(obj, t, "sound")
	if err != nil {
		return nil, err
	}

	return Dog{Name: strings.TrimSuffix(sound, " barks")}, nil
}

type dogHandler struct{}

func (dogHandler) Write(w format.Writer, v reflect.Value) error {
	return handler.WriteProperty(w, "name", v.Interface().(Dog).Name) //nolint:forcetypeassert
}

func (dogHandler) Read(v any, t reflect.Type) (any, error) {
	obj, ok := v.(*tree.Object)
	if !ok {
		return nil, fmt.Errorf("unexpected %T", v)
	}

	name, err := handler.StringField(obj, t, "name")
	if err != nil {
		return nil, err
	}

	return Dog{Name: name}, nil
}

func TestHandlers_NearestThenExact(t *testing.T) {
	t.Parallel()

	for _, f := range graphcodec.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()

			reg := newRegistry()
			typeinfo.RegisterType[Animal](reg, "animal")
			typeinfo.RegisterType[Dog](reg, "dog")

			writers := handler.NewWriters(reg)
			readers := handler.NewReaders(reg)
			writers.Add(reflect.TypeFor[Animal](), soundHandler{})
			readers.Add(reflect.TypeFor[Animal](), soundHandler{})

			opts := []graphcodec.Option{
				graphcodec.WithRegistry(reg),
				graphcodec.WithWriters(writers),
				graphcodec.WithReaders(readers),
			}

			check := func(tag, property string) {
				t.Helper()

				data, err := graphcodec.Marshal(f, Dog{Name: "rex"}, opts...)
				require.NoError(t, err)

				r, err := f.NewReader(bytes.NewReader(data))
				require.NoError(t, err)

				root, err := graphcodec.NewDecoder(opts...).Parse(r)
				require.NoError(t, err)
				require.IsType(t, &tree.Object{}, root)

				obj := root.(*tree.Object) //nolint:forcetypeassert
				got, _ := obj.Tag()
				assert.Equal(t, tag, got)
				assert.Equal(t, []string{property}, obj.Keys())

				var out Animal
				require.NoError(t, graphcodec.Unmarshal(f, data, &out, opts...))
				assert.Equal(t, Dog{Name: "rex"}, out)
			}

			check("animal", "sound")

			writers.Add(reflect.TypeFor[Dog](), dogHandler{})
			readers.Add(reflect.TypeFor[Dog](), dogHandler{})

			check("dog", "name")
		})
	}
}

type Record struct {
	At   time.Time
	Took time.Duration
	Big  *big.Int
	Site *url.URL
	ID   uuid.UUID
	Lang language.Tag
	Zone *time.Location
}

func TestRoundTrip_WellKnown(t *testing.T) {
	t.Parallel()

	n, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)

	site, err := url.Parse("https://example.com/path?q=1")
	require.NoError(t, err)

	in := Record{
		At:   time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC),
		Took: 3 * time.Second,
		Big:  n,
		Site: site,
		ID:   uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		Lang: language.MustParse("en-US"),
		Zone: time.UTC,
	}

	for _, f := range graphcodec.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()

			opt := graphcodec.WithRegistry(newRegistry())

			data, err := graphcodec.Marshal(f, in, opt)
			require.NoError(t, err)

			var out Record
			require.NoError(t, graphcodec.Unmarshal(f, data, &out, opt))

			assert.True(t, in.At.Equal(out.At))
			assert.Equal(t, in.Took, out.Took)
			assert.Equal(t, in.Big.String(), out.Big.String())
			assert.Equal(t, in.Site.String(), out.Site.String())
			assert.Equal(t, in.ID, out.ID)
			assert.Equal(t, in.Lang, out.Lang)
			assert.Equal(t, in.Zone.String(), out.Zone.String())
		})
	}
}

type Names []string

func TestRoundTrip_NamedSlice(t *testing.T) {
	t.Parallel()

	opt := graphcodec.WithRegistry(newRegistry())

	data, err := graphcodec.Marshal(graphcodec.JSON, Names{"a", "b"}, opt)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"$items":["a","b"]`)

	var out any
	require.NoError(t, graphcodec.Unmarshal(graphcodec.JSON, data, &out, opt))
	assert.Equal(t, Names{"a", "b"}, out)
}

type Pair struct {
	A, B *Address
}

func TestRoundTrip_SharedReference(t *testing.T) {
	t.Parallel()

	opt := graphcodec.WithRegistry(newRegistry())
	shared := &Address{City: "Rome", Zip: 100}

	data, err := graphcodec.Marshal(graphcodec.MsgPack, Pair{A: shared, B: shared}, opt)
	require.NoError(t, err)

	var out Pair
	require.NoError(t, graphcodec.Unmarshal(graphcodec.MsgPack, data, &out, opt))
	assert.Equal(t, *shared, *out.A)
	assert.Equal(t, *shared, *out.B)
	assert.NotSame(t, out.A, out.B)
}

func TestMarshal_Cycle(t *testing.T) {
	t.Parallel()

	p := &Person{Name: "loop"}
	p.Friends = []*Person{p}

	_, err := graphcodec.Marshal(graphcodec.JSON, p, graphcodec.WithRegistry(newRegistry()))
	require.ErrorIs(t, err, graphcodec.ErrCycle)
}

func TestMarshal_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := graphcodec.Marshal(graphcodec.JSON, make(chan int), graphcodec.WithRegistry(newRegistry()))
	require.ErrorIs(t, err, graphcodec.ErrUnsupportedKind)

	var usage format.UsageError
	require.ErrorAs(t, err, &usage)
}

func TestRoundTrip_DeepNesting(t *testing.T) {
	t.Parallel()

	const depth = 10000

	var in any
	for range depth {
		in = []any{in}
	}

	for _, f := range graphcodec.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()

			data, err := graphcodec.Marshal(f, in)
			require.NoError(t, err)

			var out any
			require.NoError(t, graphcodec.Unmarshal(f, data, &out))

			for i := range depth {
				level, ok := out.([]any)
				require.True(t, ok, "level %d", i)
				require.Len(t, level, 1)

				out = level[0]
			}

			assert.Nil(t, out)
		})
	}
}

type Account struct {
	Owner   string
	Balance *big.Int
}

func TestUnmarshal_Constructor(t *testing.T) {
	t.Parallel()

	reg := newRegistry()
	typeinfo.RegisterType[Account](reg, "acct")
	require.NoError(t, reg.RegisterConstructor(func(owner string, balance *big.Int) (*Account, error) {
		if balance == nil {
			return nil, assert.AnError
		}

		return &Account{Owner: owner, Balance: balance}, nil
	}))

	opt := graphcodec.WithRegistry(reg)

	got, err := graphcodec.NewDecoder(opt).Decode(json.NewReader(strings.NewReader(`{"$type":"acct","Owner":"bob"}`)))
	require.NoError(t, err)
	assert.Equal(t, Account{Owner: "bob", Balance: big.NewInt(10)}, got)

	var acc Account
	require.NoError(t, graphcodec.Unmarshal(graphcodec.JSON,
		[]byte(`{"$type":"acct","Owner":"amy","Balance":"12345678901234567890"}`), &acc, opt))
	assert.Equal(t, "amy", acc.Owner)
	assert.Equal(t, "12345678901234567890", acc.Balance.String())
}

func TestDecoder_Parse(t *testing.T) {
	t.Parallel()

	root, err := graphcodec.NewDecoder().Parse(json.NewReader(strings.NewReader(`{"$type":"pt","X":1,"tags":["a"]}`)))
	require.NoError(t, err)

	obj, ok := root.(*tree.Object)
	require.True(t, ok)

	tag, ok := obj.Tag()
	require.True(t, ok)
	assert.Equal(t, "pt", tag)
	assert.Equal(t, []string{"X", "tags"}, obj.Keys())

	var buf bytes.Buffer

	w := json.NewWriter(&buf)
	require.NoError(t, format.Emit(w, root))
	require.NoError(t, w.Close())
	assert.Equal(t, `{"$type":"pt","X":1,"tags":["a"]}`, buf.String())
}

func TestDecoder_LogsSkippedFields(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})) //nolint:exhaustruct

	var p Point
	require.NoError(t, graphcodec.Unmarshal(graphcodec.JSON, []byte(`{"$type":"pt","X":1,"Z":3}`), &p,
		graphcodec.WithRegistry(newRegistry()), graphcodec.WithLogger(logger)))

	assert.Equal(t, Point{X: 1, Y: 0}, p)
	assert.Contains(t, logs.String(), `msg="skipping unknown field"`)
	assert.Contains(t, logs.String(), "field=Z")
}
