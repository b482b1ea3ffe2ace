package handler_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/url"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/tarantool/go-graphcodec/format/json"
	"github.com/tarantool/go-graphcodec/handler"
	"github.com/tarantool/go-graphcodec/internal/mocks"
	gcTesting "github.com/tarantool/go-graphcodec/internal/testing"
	"github.com/tarantool/go-graphcodec/tree"
	"github.com/tarantool/go-graphcodec/typeinfo"
)

func TestDistance(t *testing.T) {
	t.Parallel()

	writer := reflect.TypeFor[io.Writer]()

	for _, tc := range []struct {
		name       string
		t          reflect.Type
		registered reflect.Type
		expected   int
	}{
		{"exact", reflect.TypeFor[int](), reflect.TypeFor[int](), 0},
		{"pointer to registered", reflect.TypeFor[*int](), reflect.TypeFor[int](), 1},
		{"registered pointer", reflect.TypeFor[int](), reflect.TypeFor[*int](), 1},
		{"interface", reflect.TypeFor[*bytes.Buffer](), writer, 2},
		{"interface via pointer", reflect.TypeFor[bytes.Buffer](), writer, 3},
		{"stringer", reflect.TypeFor[time.Duration](), reflect.TypeFor[fmt.Stringer](), 2},
		{"unrelated interface", reflect.TypeFor[string](), writer, -1},
		{"unrelated kinds", reflect.TypeFor[int](), reflect.TypeFor[int64](), -1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, handler.Distance(tc.t, tc.registered))
		})
	}
}

func TestRegistry_Closest(t *testing.T) {
	t.Parallel()

	r := handler.NewRegistry[string]()
	r.Add(reflect.TypeFor[io.Writer](), "writer")
	r.Add(reflect.TypeFor[*bytes.Buffer](), "buffer")

	for _, tc := range []struct {
		name     string
		t        reflect.Type
		expected string
		matched  reflect.Type
	}{
		{"exact wins", reflect.TypeFor[*bytes.Buffer](), "buffer", reflect.TypeFor[*bytes.Buffer]()},
		{"indirection beats interface", reflect.TypeFor[bytes.Buffer](), "buffer", reflect.TypeFor[*bytes.Buffer]()},
		{"interface", reflect.TypeFor[*os.File](), "writer", reflect.TypeFor[io.Writer]()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m, ok := r.Closest(tc.t)
			require.True(t, ok)
			assert.Equal(t, tc.expected, m.Handler)
			assert.Equal(t, tc.matched, m.Type)
		})
	}

	_, ok := r.Closest(reflect.TypeFor[int]())
	assert.False(t, ok)

	_, ok = r.Closest(nil)
	assert.False(t, ok)
}

type failure struct{}

func (failure) String() string { return "failure" }
func (failure) Error() string { return "failure" }

func TestRegistry_ClosestTieGoesToEarliest(t *testing.T) {
	t.Parallel()

	r := handler.NewRegistry[string]()
	r.Add(reflect.TypeFor[fmt.Stringer](), "stringer")
	r.Add(reflect.TypeFor[error](), "error")

	m, ok := r.Closest(reflect.TypeFor[failure]())
	require.True(t, ok)
	assert.Equal(t, "stringer", m.Handler)
}

func TestRegistry_AddReplaces(t *testing.T) {
	t.Parallel()

	r := handler.NewRegistry[string]()
	r.Add(reflect.TypeFor[int](), "a")
	r.Add(reflect.TypeFor[string](), "b")
	r.Add(reflect.TypeFor[int](), "c")

	assert.Equal(t, 2, r.Len())

	m, ok := r.Closest(reflect.TypeFor[int]())
	require.True(t, ok)
	assert.Equal(t, "c", m.Handler)
}

func TestWellKnown_Registered(t *testing.T) {
	t.Parallel()

	res := typeinfo.NewRegistry()
	writers := handler.NewWriters(res)
	readers := handler.NewReaders(res)

	assert.Equal(t, writers.Len(), readers.Len())

	for _, typ := range []reflect.Type{
		reflect.TypeFor[uuid.UUID](),
		reflect.TypeFor[*big.Int](),
		reflect.TypeFor[language.Tag](),
	} {
		_, ok := writers.Closest(typ)
		assert.True(t, ok, typ.String())

		got, err := res.Resolve(res.NameOf(typ))
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}
}

// writeNamed writes v through h inside an object tagged tag and parses the
// JSON back into a Value Tree.
func writeNamed(t *testing.T, h handler.Writer, tag string, v any) (string, any) {
	t.Helper()

	var buf bytes.Buffer

	w := json.NewWriter(&buf)
	require.NoError(t, w.BeginObject(tag))
	require.NoError(t, h.Write(w, reflect.ValueOf(v)))
	require.NoError(t, w.EndObject())
	require.NoError(t, w.Close())

	return buf.String(), gcTesting.Tree(t, json.NewReader(bytes.NewReader(buf.Bytes())))
}

// writeCompact writes v through h as the only element of an array and
// returns the element parsed back.
func writeCompact(t *testing.T, h handler.CompactWriter, v any) any {
	t.Helper()

	var buf bytes.Buffer

	w := json.NewWriter(&buf)
	require.NoError(t, w.BeginArray())
	require.NoError(t, h.WriteCompact(w, reflect.ValueOf(v)))
	require.NoError(t, w.EndArray())
	require.NoError(t, w.Close())

	parsed := gcTesting.Tree(t, json.NewReader(bytes.NewReader(buf.Bytes())))
	require.IsType(t, &tree.Array{}, parsed)

	arr := parsed.(*tree.Array) //nolint:forcetypeassert
	require.Equal(t, 1, arr.Len())

	return arr.Get(0)
}

func TestWellKnown_RoundTrip(t *testing.T) {
	t.Parallel()

	res := typeinfo.NewRegistry()
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	site, err := url.Parse("https://example.com/a?b=c")
	require.NoError(t, err)

	for _, tc := range []struct {
		name  string
		h     interface {
			handler.Writer
			handler.Reader
		}
		value any
	}{
		{"string", handler.StringHandler{}, "text"},
		{"duration", handler.DurationHandler{}, 90 * time.Minute},
		{"location", handler.LocationHandler{}, time.UTC},
		{"big int", handler.BigIntHandler{}, big.NewInt(-123456789)},
		{"big float", handler.BigFloatHandler{}, big.NewFloat(1.5)},
		{"url", handler.URLHandler{}, site},
		{"class", handler.ClassHandler{Resolver: res}, reflect.TypeFor[[]string]()},
		{"uuid", handler.UUIDHandler{}, id},
		{"locale", handler.LocaleHandler{}, language.MustParse("en-US")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			typ := reflect.TypeOf(tc.value)

			_, named := writeNamed(t, tc.h, "x", tc.value)
			require.IsType(t, &tree.Object{}, named)

			got, err := tc.h.Read(named, typ)
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprint(tc.value), fmt.Sprint(got))

			cw, ok := tc.h.(handler.CompactWriter)
			if !ok {
				return
			}

			compact := writeCompact(t, cw, tc.value)
			require.IsType(t, "", compact)

			got, err = tc.h.Read(compact, typ)
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprint(tc.value), fmt.Sprint(got))
		})
	}
}

func TestTimeHandler(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	out, named := writeNamed(t, handler.TimeHandler{}, "date", ts)
	assert.JSONEq(t, `{"$type":"date","time":"2024-01-02T03:04:05Z","zone":"UTC"}`, out)

	got, err := handler.TimeHandler{}.Read(named, reflect.TypeFor[time.Time]())
	require.NoError(t, err)
	assert.True(t, ts.Equal(got.(time.Time))) //nolint:forcetypeassert

	got, err = handler.TimeHandler{}.Read(ts.UnixMilli(), reflect.TypeFor[time.Time]())
	require.NoError(t, err)
	assert.True(t, ts.Equal(got.(time.Time))) //nolint:forcetypeassert
}

func TestLocaleHandler_Named(t *testing.T) {
	t.Parallel()

	out, _ := writeNamed(t, handler.LocaleHandler{}, "locale", language.MustParse("de-CH"))
	assert.JSONEq(t, `{"$type":"locale","language":"de","country":"CH","variant":""}`, out)
}

func TestMissingFieldError(t *testing.T) {
	t.Parallel()

	_, err := handler.TimeHandler{}.Read(tree.NewObject(), reflect.TypeFor[time.Time]())
	require.ErrorIs(t, err, handler.ErrMissingField)

	var missing handler.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "time", missing.Field)
	assert.Equal(t, reflect.TypeFor[time.Time](), missing.Type)
	assert.Equal(t, "missing required field: time.Time.time", err.Error())
}

func TestUnexpectedValue(t *testing.T) {
	t.Parallel()

	_, err := handler.UUIDHandler{}.Read(true, reflect.TypeFor[uuid.UUID]())
	require.ErrorIs(t, err, handler.ErrUnexpectedValue)

	obj := tree.NewObject()
	obj.Put("value", int64(1))

	_, err = handler.URLHandler{}.Read(obj, reflect.TypeFor[*url.URL]())
	require.ErrorIs(t, err, handler.ErrUnexpectedValue)
}

// eventWriter returns a writer mock that accepts only property names,
// strings and int32 values, logging them to events.
func eventWriter(t *testing.T, events *[]string) *mocks.WriterMock {
	t.Helper()

	w := mocks.NewWriterMock(minimock.NewController(t))

	w.PropertyNameMock.Optional().Set(func(name string) error {
		*events = append(*events, name+":")
		return nil
	})
	w.StringMock.Optional().Set(func(v string) error {
		*events = append(*events, fmt.Sprintf("%q", v))
		return nil
	})
	w.Int32Mock.Optional().Set(func(v int32) error {
		*events = append(*events, fmt.Sprint(v))
		return nil
	})

	return w
}

func TestWellKnown_WriteEvents(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name     string
		h        handler.Writer
		value    any
		expected []string
	}{
		{"string", handler.StringHandler{}, "text", []string{"value:", `"text"`}},
		{"duration", handler.DurationHandler{}, 90 * time.Second, []string{"value:", `"1m30s"`}},
		{
			"time", handler.TimeHandler{}, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			[]string{"time:", `"2024-01-02T03:04:05Z"`, "zone:", `"UTC"`},
		},
		{"location", handler.LocationHandler{}, time.UTC, []string{"zone:", `"UTC"`, "offset:", "0"}},
		{
			"locale", handler.LocaleHandler{}, language.MustParse("pt-BR"),
			[]string{"language:", `"pt"`, "country:", `"BR"`, "variant:", `""`},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var events []string

			w := eventWriter(t, &events)
			require.NoError(t, tc.h.Write(w, reflect.ValueOf(tc.value)))
			assert.Equal(t, tc.expected, events)
		})
	}
}

func TestWellKnown_WriterErrorStops(t *testing.T) {
	t.Parallel()

	errFull := errors.New("writer full")

	mc := minimock.NewController(t)
	w := mocks.NewWriterMock(mc).
		PropertyNameMock.Expect("time").Return(nil).
		StringMock.Return(errFull)

	err := handler.TimeHandler{}.Write(w, reflect.ValueOf(time.Unix(0, 0).UTC()))
	require.ErrorIs(t, err, errFull)
	assert.Equal(t, uint64(1), w.PropertyNameAfterCounter())
	assert.Equal(t, uint64(1), w.StringAfterCounter())
}
