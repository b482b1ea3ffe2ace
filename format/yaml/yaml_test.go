package yaml_test

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-graphcodec/format"
	"github.com/tarantool/go-graphcodec/format/yaml"
	gcTesting "github.com/tarantool/go-graphcodec/internal/testing"
	"github.com/tarantool/go-graphcodec/tree"
)

func TestWriter_Object(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	w := yaml.NewWriter(&buf)
	require.NoError(t, w.BeginObject("example.Point"))
	require.NoError(t, w.PropertyName("x"))
	require.NoError(t, w.Int64(1))
	require.NoError(t, w.PropertyName("height"))
	require.NoError(t, w.Float64(2))
	require.NoError(t, w.PropertyName("label"))
	require.NoError(t, w.String("true"))
	require.NoError(t, w.PropertyName("next"))
	require.NoError(t, w.Null())
	require.NoError(t, w.Flush())
	assert.Zero(t, buf.Len(), "nothing is written before the document is complete")
	require.NoError(t, w.EndObject())
	require.NoError(t, w.Close())

	assert.Equal(t, "$type: example.Point\nx: 1\nheight: 2.0\nlabel: \"true\"\nnext: null\n", buf.String())
}

func TestWriter_Floats(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	w := yaml.NewWriter(&buf)
	require.NoError(t, w.BeginObject(""))
	require.NoError(t, w.PropertyName("nan"))
	require.NoError(t, w.Float64(math.NaN()))
	require.NoError(t, w.PropertyName("inf"))
	require.NoError(t, w.Float32(float32(math.Inf(-1))))
	require.NoError(t, w.PropertyName("small"))
	require.NoError(t, w.Float32(0.1))
	require.NoError(t, w.EndObject())
	require.NoError(t, w.Close())

	assert.Equal(t, "nan: .nan\ninf: -.inf\nsmall: 0.1\n", buf.String())
}

func TestWriter_UsageErrors(t *testing.T) {
	t.Parallel()

	w := yaml.NewWriter(&bytes.Buffer{})
	require.NoError(t, w.BeginArray())
	require.ErrorIs(t, w.EndObject(), format.ErrNesting)
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
			name:     "block mapping",
			input:    "a: 1\nb:\n  - null\n  - true\n",
			expected: "begin { a: int64(1) ; b: [ null bool(true) ] ; } end",
		},
		{
			name:     "flow",
			input:    "[1.5, -2, foo, '3', {}]",
			expected: "begin [ float64(1.5) int64(-2) string(foo) string(3) { } ] end",
		},
		{
			name:     "alias",
			input:    "a: &x [1]\nb: *x\n",
			expected: "begin { a: [ int64(1) ] ; b: [ int64(1) ] ; } end",
		},
		{
			name:     "top-level scalar",
			input:    "hello\n",
			expected: "begin string(hello) end",
		},
		{
			name:     "large unsigned",
			input:    "[18446744073709551615]",
			expected: "begin [ int64(-1) ] end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := yaml.NewReader(strings.NewReader(tt.input))
			assert.Equal(t, tt.expected, gcTesting.Record(t, r))
		})
	}
}

func TestReader_Errors(t *testing.T) {
	t.Parallel()

	err := yaml.NewReader(strings.NewReader("")).Parse(&gcTesting.Recorder{})
	require.ErrorIs(t, err, format.ErrUnexpectedEOF)

	err = yaml.NewReader(strings.NewReader("a: [1, 2\n")).Parse(&gcTesting.Recorder{})
	require.ErrorIs(t, err, format.ErrMalformed)

	var framing format.FramingError
	require.ErrorAs(t, err, &framing)

	// yaml.v3 stops at 10,000 flow levels.
	deep := strings.Repeat("[", 10001) + strings.Repeat("]", 10001)
	err = yaml.NewReader(strings.NewReader(deep)).Parse(&gcTesting.Recorder{})
	require.ErrorIs(t, err, format.ErrMalformed)

	err = yaml.NewReader(strings.NewReader("1: a\n")).Parse(&gcTesting.Recorder{})
	require.ErrorIs(t, err, format.ErrNonStringKey)

	var structural format.StructuralError
	require.ErrorAs(t, err, &structural)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	const input = "$type: example.Bag\nitems:\n  - 1\n  - x\nnested:\n  k: 2.5\n"

	root := gcTesting.Tree(t, yaml.NewReader(strings.NewReader(input)))

	var buf bytes.Buffer

	w := yaml.NewWriter(&buf)
	require.NoError(t, format.Emit(w, root))
	require.NoError(t, w.Close())

	again := gcTesting.Tree(t, yaml.NewReader(&buf))
	assert.Equal(t, root, again)
}

func TestReader_HandlerError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, gcTesting.WriteEntries(yaml.NewWriter(&buf)))

	mc := minimock.NewController(t)
	h := gcTesting.StopAtEntry(mc)

	err := yaml.NewReader(&buf).Parse(h)
	require.ErrorIs(t, err, gcTesting.ErrStop)
	assert.Equal(t, uint64(2), h.BeginObjectEntryAfterCounter())
	assert.Zero(t, h.EndObjectBeforeCounter())
	assert.Zero(t, h.EndBeforeCounter())
}

func laughs(levels, width int) string {
	var sb strings.Builder

	sb.WriteString("l0: &l0 [")
	sb.WriteString(strings.TrimSuffix(strings.Repeat("lol, ", width), ", "))
	sb.WriteString("]\n")

	for i := 1; i < levels; i++ {
		fmt.Fprintf(&sb, "l%d: &l%d [", i, i)
		sb.WriteString(strings.TrimSuffix(strings.Repeat(fmt.Sprintf("*l%d, ", i-1), width), ", "))
		sb.WriteString("]\n")
	}

	return sb.String()
}

func TestReader_AliasExpansion(t *testing.T) {
	t.Parallel()

	rec := &gcTesting.Recorder{}

	err := yaml.NewReader(strings.NewReader(laughs(9, 10))).Parse(rec)
	require.ErrorIs(t, err, format.ErrAliasExpansion)

	var framing format.FramingError
	require.ErrorAs(t, err, &framing)
	assert.Less(t, len(rec.Events), 10_000)

	// Moderate reuse stays under the limit.
	root := gcTesting.Tree(t, yaml.NewReader(strings.NewReader(laughs(2, 20))))
	assert.Equal(t, 2, root.(*tree.Object).Len())
}
