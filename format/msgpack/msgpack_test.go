package msgpack_test

import (
	"bytes"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vmsgpack "github.com/vmihailenco/msgpack/v5"

	"github.com/tarantool/go-graphcodec/format"
	"github.com/tarantool/go-graphcodec/format/msgpack"
	gcTesting "github.com/tarantool/go-graphcodec/internal/testing"
)

func TestWriter_Bytes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	w := msgpack.NewWriter(&buf)
	require.NoError(t, w.BeginObject("long"))
	require.NoError(t, w.PropertyName("value"))
	require.NoError(t, w.Int64(42))
	require.NoError(t, w.EndObject())
	require.NoError(t, w.Close())

	assert.Equal(t, "82A52474797065A46C6F6E67A576616C75652A", gcTesting.Hex(buf.Bytes()))
}

func TestWriter_Scalars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	w := msgpack.NewWriter(&buf)
	require.NoError(t, w.BeginArray())
	require.NoError(t, w.Float32(1.5))
	require.NoError(t, w.Float64(1.5))
	require.NoError(t, w.Int64(-1))
	require.NoError(t, w.Int32(200))
	require.NoError(t, w.Int64(-200))
	require.NoError(t, w.BeginObject(""))
	require.NoError(t, w.EndObject())
	require.NoError(t, w.Null())
	require.NoError(t, w.Flush())
	assert.Zero(t, buf.Len(), "nothing is written before the document is complete")
	require.NoError(t, w.EndArray())
	require.NoError(t, w.Close())

	assert.Equal(t, "97CA3FC00000CB3FF8000000000000FFCCC8D1FF3880C0", gcTesting.Hex(buf.Bytes()))
}

func TestWriter_UsageErrors(t *testing.T) {
	t.Parallel()

	w := msgpack.NewWriter(&bytes.Buffer{})
	require.NoError(t, w.BeginObject(""))
	require.ErrorIs(t, w.Bool(true), format.ErrNesting)
	require.ErrorIs(t, w.EndArray(), format.ErrNesting)
	require.ErrorIs(t, w.Close(), format.ErrIncomplete)
}

func TestReader_Events(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "object",
			input:    "82 A161 01 A162 92 C0 C3",
			expected: "begin { a: int64(1) ; b: [ null bool(true) ] ; } end",
		},
		{
			name:     "numbers",
			input:    "95 CA3FC00000 CB3FF8000000000000 FF CFFFFFFFFFFFFFFFFF D1FF38",
			expected: "begin [ float32(1.5) float64(1.5) int64(-1) int64(-1) int64(-200) ] end",
		},
		{
			name:     "empty containers",
			input:    "92 90 80",
			expected: "begin [ [ ] { } ] end",
		},
		{
			name:     "top-level scalar",
			input:    "A3 666F6F",
			expected: "begin string(foo) end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := msgpack.NewReader(bytes.NewReader(gcTesting.MustHex(t, tt.input)))
			assert.Equal(t, tt.expected, gcTesting.Record(t, r))
		})
	}
}

func TestReader_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{name: "binary", input: "C4 01 00", expected: format.ErrUnsupportedType},
		{name: "truncated", input: "92 01", expected: format.ErrUnexpectedEOF},
		{name: "empty", input: "", expected: format.ErrUnexpectedEOF},
		{name: "trailing data", input: "C0 C0", expected: format.ErrTrailingData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := msgpack.NewReader(bytes.NewReader(gcTesting.MustHex(t, tt.input))).Parse(&gcTesting.Recorder{})
			require.ErrorIs(t, err, tt.expected)

			var framing format.FramingError
			require.ErrorAs(t, err, &framing)
		})
	}

	err := msgpack.NewReader(bytes.NewReader(gcTesting.MustHex(t, "81 01 02"))).Parse(&gcTesting.Recorder{})
	require.ErrorIs(t, err, format.ErrNonStringKey)

	var structural format.StructuralError
	require.ErrorAs(t, err, &structural)
}

func TestInterop(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	w := msgpack.NewWriter(&buf)
	require.NoError(t, w.BeginList("names"))
	require.NoError(t, w.String("a"))
	require.NoError(t, w.String("b"))
	require.NoError(t, w.EndList())
	require.NoError(t, w.Close())

	var out map[string]any
	require.NoError(t, vmsgpack.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, map[string]any{"$type": "names", "$items": []any{"a", "b"}}, out)

	data, err := vmsgpack.Marshal(map[string]any{"k": []int{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, "begin { k: [ int64(1) int64(2) ] ; } end",
		gcTesting.Record(t, msgpack.NewReader(bytes.NewReader(data))))
}

func TestDeepNesting(t *testing.T) {
	t.Parallel()

	const depth = 10000

	var buf bytes.Buffer

	w := msgpack.NewWriter(&buf)
	for range depth {
		require.NoError(t, w.BeginArray())
	}

	for range depth {
		require.NoError(t, w.EndArray())
	}

	require.NoError(t, w.Close())

	expected := append(bytes.Repeat([]byte{0x91}, depth-1), 0x90)
	assert.Equal(t, expected, buf.Bytes())

	root := gcTesting.Tree(t, msgpack.NewReader(bytes.NewReader(buf.Bytes())))
	require.NotNil(t, root)
}

func TestReader_HandlerError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, gcTesting.WriteEntries(msgpack.NewWriter(&buf)))

	mc := minimock.NewController(t)
	h := gcTesting.StopAtEntry(mc)

	err := msgpack.NewReader(&buf).Parse(h)
	require.ErrorIs(t, err, gcTesting.ErrStop)
	assert.Equal(t, uint64(2), h.BeginObjectEntryAfterCounter())
	assert.Zero(t, h.EndObjectBeforeCounter())
	assert.Zero(t, h.EndBeforeCounter())
}
