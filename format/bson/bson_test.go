package bson_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-graphcodec/format"
	"github.com/tarantool/go-graphcodec/format/bson"
	"github.com/tarantool/go-graphcodec/format/json"
	gcTesting "github.com/tarantool/go-graphcodec/internal/testing"
)

const pointDocument = "19000000" +
	"02 2474797065 00 02000000 7000" +
	"10 7800 01000000" +
	"00"

func TestWriter_Object(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	w := bson.NewWriter(&buf)
	require.NoError(t, w.BeginObject("p"))
	require.NoError(t, w.PropertyName("x"))
	require.NoError(t, w.Int32(1))
	require.NoError(t, w.EndObject())
	require.NoError(t, w.Close())

	assert.Equal(t, gcTesting.MustHex(t, pointDocument), buf.Bytes())
}

func TestWriter_ArrayIndices(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	w := bson.NewWriter(&buf)
	require.NoError(t, w.BeginArray())
	require.NoError(t, w.String("a"))
	require.NoError(t, w.Bool(true))
	require.NoError(t, w.EndArray())
	require.NoError(t, w.Close())

	expected := "12000000 02 3000 02000000 6100 08 3100 01 00"
	assert.Equal(t, gcTesting.MustHex(t, expected), buf.Bytes())

	assert.Equal(t, "begin [ string(a) bool(true) ] end",
		gcTesting.Record(t, bson.NewReader(bytes.NewReader(buf.Bytes()), bson.WithRootArray())))
	assert.Equal(t, "begin { 0: string(a) ; 1: bool(true) ; } end",
		gcTesting.Record(t, bson.NewReader(bytes.NewReader(buf.Bytes()))))
}

func TestWriter_FlushOnlyCompleteDocument(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	w := bson.NewWriter(&buf)
	require.NoError(t, w.BeginObject(""))
	require.NoError(t, w.PropertyName("n"))
	require.NoError(t, w.Null())
	require.NoError(t, w.Flush())
	assert.Zero(t, buf.Len())

	require.NoError(t, w.EndObject())
	require.NoError(t, w.Close())
	assert.Equal(t, gcTesting.MustHex(t, "08000000 0A 6E00 00"), buf.Bytes())
}

func TestWriter_UsageErrors(t *testing.T) {
	t.Parallel()

	w := bson.NewWriter(&bytes.Buffer{})
	require.ErrorIs(t, w.Int32(1), format.ErrNotContainer)

	w = bson.NewWriter(&bytes.Buffer{})
	require.NoError(t, w.BeginObject(""))
	require.NoError(t, w.PropertyName("a\x00b"))
	require.ErrorIs(t, w.Int32(1), format.ErrInvalidName)

	w = bson.NewWriter(&bytes.Buffer{})
	require.NoError(t, w.BeginArray())
	require.ErrorIs(t, w.EndObject(), format.ErrNesting)
	require.ErrorIs(t, w.Close(), format.ErrIncomplete)
}

func TestReader_Events(t *testing.T) {
	t.Parallel()

	r := bson.NewReader(bytes.NewReader(gcTesting.MustHex(t, pointDocument)))
	assert.Equal(t, "begin { $type: string(p) ; x: int32(1) ; } end", gcTesting.Record(t, r))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("long value ", 200)
	longName := strings.Repeat("k", 3000)

	var buf bytes.Buffer

	w := bson.NewWriter(&buf)
	require.NoError(t, w.BeginObject("t"))
	require.NoError(t, w.PropertyName("i"))
	require.NoError(t, w.Int64(-1<<40))
	require.NoError(t, w.PropertyName("f"))
	require.NoError(t, w.Float32(0.5))
	require.NoError(t, w.PropertyName("nested"))
	require.NoError(t, w.BeginList("l"))
	require.NoError(t, w.Float64(1.25))
	require.NoError(t, w.BeginObject(""))
	require.NoError(t, w.EndObject())
	require.NoError(t, w.EndList())
	require.NoError(t, w.PropertyName("long"))
	require.NoError(t, w.String(long))
	require.NoError(t, w.PropertyName(longName))
	require.NoError(t, w.Bool(false))
	require.NoError(t, w.EndObject())
	require.NoError(t, w.Close())

	root := gcTesting.Tree(t, bson.NewReader(bytes.NewReader(buf.Bytes())))

	var out bytes.Buffer

	jw := json.NewWriter(&out)
	require.NoError(t, format.Emit(jw, root))
	require.NoError(t, jw.Close())

	expected := `{"$type":"t","i":-1099511627776,"f":0.5,"nested":{"$type":"l","$items":[1.25,{}]},` +
		`"long":"` + long + `","` + longName + `":false}`
	assert.Equal(t, expected, out.String())
}

func TestReader_FramingErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected error
		offset   int64
	}{
		{
			name:     "declared length too long",
			input:    "1A000000" + pointDocument[8:],
			expected: format.ErrLengthMismatch,
			offset:   25,
		},
		{
			name:     "declared length too short",
			input:    "14000000" + pointDocument[8:],
			expected: format.ErrLengthMismatch,
			offset:   24,
		},
		{
			name:     "nested length",
			input:    "0D000000 04 6100 06000000 00 00",
			expected: format.ErrLengthMismatch,
			offset:   12,
		},
		{
			name:     "truncated",
			input:    "19000000 02 2474797065",
			expected: format.ErrUnexpectedEOF,
			offset:   10,
		},
		{
			name:     "unsupported type",
			input:    "0A000000 05 6100 00 00 00",
			expected: format.ErrUnsupportedType,
			offset:   4,
		},
		{
			name:     "unterminated string",
			input:    "0E000000 02 6100 02000000 7001 00",
			expected: format.ErrUnterminatedString,
			offset:   13,
		},
		{
			name:     "string length",
			input:    "0E000000 02 6100 00000000 7000 00",
			expected: format.ErrInvalidSize,
			offset:   7,
		},
		{
			name:     "document length",
			input:    "04000000",
			expected: format.ErrInvalidSize,
			offset:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			input := gcTesting.MustHex(t, tt.input)
			err := bson.NewReader(bytes.NewReader(input)).Parse(&gcTesting.Recorder{})
			require.ErrorIs(t, err, tt.expected)

			var framing format.FramingError
			require.ErrorAs(t, err, &framing)
			assert.Equal(t, tt.offset, framing.Offset())
		})
	}
}

func TestReader_ArrayIndex(t *testing.T) {
	t.Parallel()

	input := gcTesting.MustHex(t, "0C000000 10 3100 01000000 00")
	err := bson.NewReader(bytes.NewReader(input), bson.WithRootArray()).Parse(&gcTesting.Recorder{})
	require.ErrorIs(t, err, format.ErrArrayIndex)

	var structural format.StructuralError
	require.ErrorAs(t, err, &structural)
}

func TestReader_HandlerError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, gcTesting.WriteEntries(bson.NewWriter(&buf)))

	mc := minimock.NewController(t)
	h := gcTesting.StopAtEntry(mc)

	err := bson.NewReader(&buf).Parse(h)
	require.ErrorIs(t, err, gcTesting.ErrStop)
	assert.Equal(t, uint64(2), h.BeginObjectEntryAfterCounter())
	assert.Zero(t, h.EndObjectBeforeCounter())
	assert.Zero(t, h.EndBeforeCounter())
}
