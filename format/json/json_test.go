package json_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-graphcodec/format"
	"github.com/tarantool/go-graphcodec/format/json"
	gcTesting "github.com/tarantool/go-graphcodec/internal/testing"
)

func TestWriter_Object(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	w := json.NewWriter(&buf)
	require.NoError(t, w.BeginObject("example.Point"))
	require.NoError(t, w.PropertyName("x"))
	require.NoError(t, w.Int32(1))
	require.NoError(t, w.PropertyName("y"))
	require.NoError(t, w.Float64(2))
	require.NoError(t, w.PropertyName("tags"))
	require.NoError(t, w.BeginArray())
	require.NoError(t, w.String("a"))
	require.NoError(t, w.Null())
	require.NoError(t, w.Bool(false))
	require.NoError(t, w.EndArray())
	require.NoError(t, w.EndObject())
	require.NoError(t, w.Close())

	assert.Equal(t, `{"$type":"example.Point","x":1,"y":2.0,"tags":["a",null,false]}`, buf.String())
}

func TestWriter_Indent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	w := json.NewWriter(&buf, json.WithIndent("  "))
	require.NoError(t, w.BeginObject("example.Flag"))
	require.NoError(t, w.PropertyName("prop"))
	require.NoError(t, w.Bool(true))
	require.NoError(t, w.EndObject())
	require.NoError(t, w.Close())

	assert.Equal(t, "{\r\n  \"$type\": \"example.Flag\",\r\n  \"prop\": true\r\n}\r\n", buf.String())
}

func TestWriter_IndentNested(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	w := json.NewWriter(&buf, json.WithIndent("\t"))
	require.NoError(t, w.BeginArray())
	require.NoError(t, w.BeginArray())
	require.NoError(t, w.EndArray())
	require.NoError(t, w.BeginList("list"))
	require.NoError(t, w.Int64(7))
	require.NoError(t, w.EndList())
	require.NoError(t, w.EndArray())
	require.NoError(t, w.Close())

	expected := "[\r\n\t[],\r\n\t{\r\n\t\t\"$type\": \"list\",\r\n\t\t\"$items\": [\r\n\t\t\t7\r\n\t\t]\r\n\t}\r\n]\r\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriter_Map(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	w := json.NewWriter(&buf)
	require.NoError(t, w.BeginMap("map[int]string"))
	require.NoError(t, w.BeginKeys())
	require.NoError(t, w.Int64(1))
	require.NoError(t, w.EndKeys())
	require.NoError(t, w.BeginItems())
	require.NoError(t, w.String("one"))
	require.NoError(t, w.EndItems())
	require.NoError(t, w.EndMap())
	require.NoError(t, w.Close())

	assert.Equal(t, `{"$type":"map[int]string","$keys":[1],"$items":["one"]}`, buf.String())
}

func TestWriter_Escaping(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	w := json.NewWriter(&buf)
	require.NoError(t, w.BeginArray())
	require.NoError(t, w.String("q\"b\\t\tb\bn\nr\rf\f\x01\x1fé"))
	require.NoError(t, w.EndArray())
	require.NoError(t, w.Close())

	assert.Equal(t, `["q\"b\\t\tb\bn\nr\rf\f\u0001\u001fé"]`, buf.String())
}

func TestWriter_Floats(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	w := json.NewWriter(&buf)
	require.NoError(t, w.BeginArray())
	require.NoError(t, w.Float64(1.5))
	require.NoError(t, w.Float64(-3))
	require.NoError(t, w.Float64(1e21))
	require.NoError(t, w.Float32(0.1))
	require.NoError(t, w.EndArray())
	require.NoError(t, w.Close())

	assert.Equal(t, `[1.5,-3.0,1e+21,0.1]`, buf.String())
}

func TestWriter_NonFinite(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		w := json.NewWriter(&bytes.Buffer{})
		require.NoError(t, w.BeginArray())

		err := w.Float64(v)
		require.ErrorIs(t, err, format.ErrNonFinite)

		var usage format.UsageError
		require.ErrorAs(t, err, &usage)
	}
}

func TestWriter_UsageErrors(t *testing.T) {
	t.Parallel()

	t.Run("second top-level value", func(t *testing.T) {
		t.Parallel()

		w := json.NewWriter(&bytes.Buffer{})
		require.NoError(t, w.BeginArray())
		require.NoError(t, w.EndArray())
		require.ErrorIs(t, w.BeginArray(), format.ErrMultipleTopLevel)
	})

	t.Run("dangling name", func(t *testing.T) {
		t.Parallel()

		w := json.NewWriter(&bytes.Buffer{})
		require.NoError(t, w.BeginObject(""))
		require.NoError(t, w.PropertyName("a"))
		require.ErrorIs(t, w.PropertyName("b"), format.ErrDanglingName)
		require.ErrorIs(t, w.EndObject(), format.ErrDanglingName)
	})

	t.Run("mismatched close", func(t *testing.T) {
		t.Parallel()

		w := json.NewWriter(&bytes.Buffer{})
		require.NoError(t, w.BeginObject(""))
		require.ErrorIs(t, w.EndArray(), format.ErrNesting)
	})

	t.Run("value without name", func(t *testing.T) {
		t.Parallel()

		w := json.NewWriter(&bytes.Buffer{})
		require.NoError(t, w.BeginObject(""))
		require.ErrorIs(t, w.Int32(1), format.ErrNesting)
	})

	t.Run("close before anything is written", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		w := json.NewWriter(&buf)
		require.NoError(t, w.BeginObject(""))
		require.ErrorIs(t, w.Close(), format.ErrIncomplete)
		assert.Empty(t, buf.String())
	})
}

func TestReader_Events(t *testing.T) {
	t.Parallel()

	r := json.NewReader(strings.NewReader(`{"$type":"p","x":1,"y":[2.5,"s",null,true],"z":{}}`))

	assert.Equal(t,
		"begin { $type: string(p) ; x: int64(1) ; y: [ float64(2.5) string(s) null bool(true) ] ; z: { } ; } end",
		gcTesting.Record(t, r))
}

func TestReader_Numbers(t *testing.T) {
	t.Parallel()

	r := json.NewReader(strings.NewReader(`[-9223372036854775808, 18446744073709551615, 1e2, 36893488147419103232, 0.5E1]`))

	assert.Equal(t,
		"begin [ int64(-9223372036854775808) int64(-1) float64(100) float64(3.6893488147419103e+19) float64(5) ] end",
		gcTesting.Record(t, r))
}

func TestReader_NullDocument(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "begin null end", gcTesting.Record(t, json.NewReader(strings.NewReader(" null "))))
}

func TestReader_Lenient(t *testing.T) {
	t.Parallel()

	src := "{\n  // comment\n  \"a\": [1, 2,], /* more */\n}"

	err := json.NewReader(strings.NewReader(src)).Parse(&gcTesting.Recorder{})
	require.Error(t, err)

	var framing format.FramingError
	require.ErrorAs(t, err, &framing)

	assert.Equal(t, "begin { a: [ int64(1) int64(2) ] ; } end",
		gcTesting.Record(t, json.NewReader(strings.NewReader(src), json.WithLenient())))
}

func TestReader_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{name: "top-level scalar", input: `42`, expected: format.ErrNotContainer},
		{name: "empty input", input: ``, expected: format.ErrUnexpectedEOF},
		{name: "truncated", input: `{"a":[1,`, expected: format.ErrUnexpectedEOF},
		{name: "trailing data", input: `{} {}`, expected: format.ErrTrailingData},
		{name: "syntax", input: `{"a" 1}`, expected: format.ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := json.NewReader(strings.NewReader(tt.input)).Parse(&gcTesting.Recorder{})
			require.ErrorIs(t, err, tt.expected)

			var framing format.FramingError
			require.ErrorAs(t, err, &framing)
		})
	}
}

func TestReader_DeeperThanTokenizerLimit(t *testing.T) {
	t.Parallel()

	const depth = 20000

	input := strings.Repeat("[", depth) + strings.Repeat("]", depth)

	rec := &gcTesting.Recorder{}
	require.NoError(t, json.NewReader(strings.NewReader(input)).Parse(rec))
	assert.Len(t, rec.Events, 2*depth+2)
}

func TestReader_HandlerError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, gcTesting.WriteEntries(json.NewWriter(&buf)))

	mc := minimock.NewController(t)
	h := gcTesting.StopAtEntry(mc)

	err := json.NewReader(&buf).Parse(h)
	require.ErrorIs(t, err, gcTesting.ErrStop)
	assert.Equal(t, uint64(2), h.BeginObjectEntryAfterCounter())
	assert.Zero(t, h.EndObjectBeforeCounter())
	assert.Zero(t, h.EndBeforeCounter())
}

func TestRoundTripThroughEmit(t *testing.T) {
	t.Parallel()

	src := `{"$type":"p","list":[1,{"k":"v"}],"n":null}`
	root := gcTesting.Tree(t, json.NewReader(strings.NewReader(src)))

	var buf bytes.Buffer

	w := json.NewWriter(&buf)
	require.NoError(t, format.Emit(w, root))
	require.NoError(t, w.Close())
	assert.Equal(t, src, buf.String())
}
