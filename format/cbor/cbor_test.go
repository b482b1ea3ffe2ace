package cbor_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	fxcbor "github.com/fxamacker/cbor/v2"
	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-graphcodec/format"
	"github.com/tarantool/go-graphcodec/format/cbor"
	gcTesting "github.com/tarantool/go-graphcodec/internal/testing"
)

func write(t *testing.T, fn func(w format.Writer) error) []byte {
	t.Helper()

	var buf bytes.Buffer

	w := cbor.NewWriter(&buf)
	require.NoError(t, fn(w))
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func TestWriter_Bytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fn       func(w format.Writer) error
		expected string
	}{
		{
			name: "boxed long",
			fn: func(w format.Writer) error {
				_ = w.BeginObject("long")
				_ = w.PropertyName("value")
				_ = w.Int64(42)

				return w.EndObject()
			},
			expected: "BF 65 2474797065 64 6C6F6E67 65 76616C7565 18 2A FF",
		},
		{
			name: "boxed boolean",
			fn: func(w format.Writer) error {
				_ = w.BeginObject("boolean")
				_ = w.PropertyName("value")
				_ = w.Bool(false)

				return w.EndObject()
			},
			expected: "BF 65 2474797065 67 626F6F6C65616E 65 76616C7565 F4 FF",
		},
		{
			name:     "null",
			fn:       func(w format.Writer) error { return w.Null() },
			expected: "F6",
		},
		{
			name: "integers",
			fn: func(w format.Writer) error {
				_ = w.BeginArray()
				_ = w.Int64(19)
				_ = w.Int32(20)

				return w.EndArray()
			},
			expected: "9F 13 14 FF",
		},
		{
			name: "empty array",
			fn: func(w format.Writer) error {
				_ = w.BeginArray()

				return w.EndArray()
			},
			expected: "9F FF",
		},
		{
			name: "strings",
			fn: func(w format.Writer) error {
				_ = w.BeginArray()
				_ = w.String("foo")
				_ = w.String("bar")

				return w.EndArray()
			},
			expected: "9F 63666F6F 63626172 FF",
		},
		{
			name: "floats are doubles",
			fn: func(w format.Writer) error {
				_ = w.BeginArray()
				_ = w.Float64(1.0625)
				_ = w.Float32(1.0625)

				return w.EndArray()
			},
			expected: "9F FB3FF1000000000000 FB3FF1000000000000 FF",
		},
		{
			name: "infinities stay doubles",
			fn: func(w format.Writer) error {
				_ = w.BeginArray()
				_ = w.Float64(math.Inf(1))
				_ = w.Float32(float32(math.Inf(-1)))

				return w.EndArray()
			},
			expected: "9F FB7FF0000000000000 FBFFF0000000000000 FF",
		},
		{
			name: "integer widths",
			fn: func(w format.Writer) error {
				_ = w.BeginArray()
				_ = w.Int64(-1)
				_ = w.Int64(-25)
				_ = w.Int64(500)
				_ = w.Int64(70000)
				_ = w.Int64(0x0102030405060708)
				_ = w.Int64(-1 << 63)

				return w.EndArray()
			},
			expected: "9F 20 3818 1901F4 1A00011170 1B0102030405060708 3B7FFFFFFFFFFFFFFF FF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, strings.ReplaceAll(tt.expected, " ", ""), gcTesting.Hex(write(t, tt.fn)))
		})
	}
}

func TestWriter_UsageErrors(t *testing.T) {
	t.Parallel()

	w := cbor.NewWriter(&bytes.Buffer{})
	require.NoError(t, w.Null())
	require.ErrorIs(t, w.Null(), format.ErrMultipleTopLevel)

	w = cbor.NewWriter(&bytes.Buffer{})
	require.NoError(t, w.BeginArray())
	require.NoError(t, w.PropertyName("a"))
	require.ErrorIs(t, w.Int64(1), format.ErrNesting)
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
			name:     "boxed long",
			input:    "BF 65 2474797065 64 6C6F6E67 65 76616C7565 18 2A FF",
			expected: "begin { $type: string(long) ; value: int64(42) ; } end",
		},
		{
			name:     "definite containers",
			input:    "A2 6161 01 6162 82 02 03",
			expected: "begin { a: int64(1) ; b: [ int64(2) int64(3) ] ; } end",
		},
		{
			name:     "empty definite containers",
			input:    "82 80 A0",
			expected: "begin [ [ ] { } ] end",
		},
		{
			name:     "eight byte integers",
			input:    "83 1B0102030405060708 1BFFFFFFFFFFFFFFFF 3B7FFFFFFFFFFFFFFF",
			expected: "begin [ int64(72623859790382856) int64(-1) int64(-9223372036854775808) ] end",
		},
		{
			name:     "floats",
			input:    "84 F93C00 F9C400 FA47C35000 FB3FF1000000000000",
			expected: "begin [ float32(1) float32(-4) float32(100000) float64(1.0625) ] end",
		},
		{
			name:     "simple values",
			input:    "9F F4 F5 F6 F7 FF",
			expected: "begin [ bool(false) bool(true) null null ] end",
		},
		{
			name:     "top-level scalar",
			input:    "63 666F6F",
			expected: "begin string(foo) end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := cbor.NewReader(bytes.NewReader(gcTesting.MustHex(t, tt.input)))
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
		{name: "byte string", input: "41 00", expected: format.ErrUnsupportedType},
		{name: "tag", input: "C1 01", expected: format.ErrUnsupportedType},
		{name: "break in definite array", input: "81 FF", expected: format.ErrMalformed},
		{name: "break after key", input: "BF 6161 FF", expected: format.ErrMalformed},
		{name: "reserved additional information", input: "1C", expected: format.ErrMalformed},
		{name: "truncated", input: "9F 01", expected: format.ErrUnexpectedEOF},
		{name: "truncated argument", input: "1A 0001", expected: format.ErrUnexpectedEOF},
		{name: "trailing data", input: "F6 F6", expected: format.ErrTrailingData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := cbor.NewReader(bytes.NewReader(gcTesting.MustHex(t, tt.input))).Parse(&gcTesting.Recorder{})
			require.ErrorIs(t, err, tt.expected)

			var framing format.FramingError
			require.ErrorAs(t, err, &framing)
		})
	}
}

func TestReader_NonStringKey(t *testing.T) {
	t.Parallel()

	err := cbor.NewReader(bytes.NewReader(gcTesting.MustHex(t, "A1 01 02"))).Parse(&gcTesting.Recorder{})
	require.ErrorIs(t, err, format.ErrNonStringKey)

	var structural format.StructuralError
	require.ErrorAs(t, err, &structural)
}

func TestReader_DeepNesting(t *testing.T) {
	t.Parallel()

	const depth = 10000

	input := append(bytes.Repeat([]byte{0x9F}, depth), bytes.Repeat([]byte{0xFF}, depth)...)

	root := gcTesting.Tree(t, cbor.NewReader(bytes.NewReader(input)))

	var buf bytes.Buffer

	w := cbor.NewWriter(&buf)
	require.NoError(t, format.Emit(w, root))
	require.NoError(t, w.Close())
	assert.Equal(t, input, buf.Bytes())
}

func TestInterop(t *testing.T) {
	t.Parallel()

	t.Run("fixed-length input", func(t *testing.T) {
		t.Parallel()

		data, err := fxcbor.Marshal([]any{1, "x", map[string]any{"k": -2}, 1.5, true, nil})
		require.NoError(t, err)

		assert.Equal(t,
			"begin [ int64(1) string(x) { k: int64(-2) ; } float64(1.5) bool(true) null ] end",
			gcTesting.Record(t, cbor.NewReader(bytes.NewReader(data))))
	})

	t.Run("indefinite-length output", func(t *testing.T) {
		t.Parallel()

		data := write(t, func(w format.Writer) error {
			_ = w.BeginObject("long")
			_ = w.PropertyName("value")
			_ = w.Int64(-42)

			return w.EndObject()
		})

		var out map[string]any
		require.NoError(t, fxcbor.Unmarshal(data, &out))
		assert.Equal(t, map[string]any{"$type": "long", "value": int64(-42)}, out)
	})
}

func TestDiagnose(t *testing.T) {
	t.Parallel()

	data := write(t, func(w format.Writer) error {
		_ = w.BeginList("list")
		_ = w.Int64(19)
		_ = w.Float64(1.0625)
		_ = w.Null()

		return w.EndList()
	})

	diag, err := cbor.Diagnose(data)
	require.NoError(t, err)
	assert.Equal(t, `{_ "$type": "list", "$items": [_ 19, 1.0625, null]}`, diag)
}

func TestReader_HandlerError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, gcTesting.WriteEntries(cbor.NewWriter(&buf)))

	mc := minimock.NewController(t)
	h := gcTesting.StopAtEntry(mc)

	err := cbor.NewReader(&buf).Parse(h)
	require.ErrorIs(t, err, gcTesting.ErrStop)
	assert.Equal(t, uint64(2), h.BeginObjectEntryAfterCounter())
	assert.Zero(t, h.EndObjectBeforeCounter())
	assert.Zero(t, h.EndBeforeCounter())
}
