package main //nolint:testpackage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	graphcodec "github.com/tarantool/go-graphcodec"
	"github.com/tarantool/go-graphcodec/format"
)

func runString(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	err := run(args, strings.NewReader(input), &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

func TestRun_Transcode(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name     string
		args     []string
		input    string
		expected string
	}{
		{
			name:     "json to yaml",
			args:     []string{"--from", "json", "--to", "yaml"},
			input:    `{"$type":"pt","X":1}`,
			expected: "$type: pt\nX: 1\n",
		},
		{
			name:     "json to cbor diagnostic",
			args:     []string{"--to", "cbor", "--diag"},
			input:    `{"$type":"long","value":42}`,
			expected: "{_ \"$type\": \"long\", \"value\": 42}\n",
		},
		{
			name:     "lenient json",
			args:     []string{"--lenient"},
			input:    "[1, 2, // two\n]",
			expected: "[1,2]",
		},
		{
			name:     "indented json",
			args:     []string{"--indent", "  "},
			input:    `{"a":true}`,
			expected: "{\r\n  \"a\": true\r\n}\r\n",
		},
		{
			name:     "short flags",
			args:     []string{"-f", "yaml", "-t", "json"},
			input:    "a: [x, 2.5]\n",
			expected: `{"a":["x",2.5]}`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, _, err := runString(t, tt.input, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRun_BinaryRoundTrip(t *testing.T) {
	t.Parallel()

	const input = `{"$type":"map[int]bool","$keys":[1,3],"$items":[false,true]}`

	for _, f := range graphcodec.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()

			encoded, _, err := runString(t, input, "--to", f.String())
			require.NoError(t, err)

			decoded, _, err := runString(t, encoded, "--from", f.String())
			require.NoError(t, err)
			assert.Equal(t, input, decoded)
		})
	}
}

func TestRun_TopLevelArray(t *testing.T) {
	t.Parallel()

	const input = `[1,"a",{"$type":"pt","X":2}]`

	for _, f := range graphcodec.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()

			encoded, _, err := runString(t, input, "--to", f.String())
			require.NoError(t, err)

			decoded, _, err := runString(t, encoded, "--from", f.String())
			require.NoError(t, err)
			assert.Equal(t, input, decoded)
		})
	}
}

func TestRun_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`[null]`), 0o600))

	out, _, err := runString(t, "", "--to", "cbor", "--diag", path)
	require.NoError(t, err)
	assert.Equal(t, "[_ null]\n", out)
}

func TestRun_Verbose(t *testing.T) {
	t.Parallel()

	_, logs, err := runString(t, `[]`, "-v", "--to", "msgpack")
	require.NoError(t, err)
	assert.Contains(t, logs, `msg=transcoded`)
	assert.Contains(t, logs, "to=msgpack")
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name     string
		args     []string
		input    string
		expected error
	}{
		{name: "unknown format", args: []string{"--to", "xml"}, input: `[]`, expected: graphcodec.ErrUnknownFormat},
		{name: "diag without cbor", args: []string{"--diag"}, input: `[]`, expected: ErrUsage},
		{name: "two files", args: []string{"a", "b"}, input: `[]`, expected: ErrUsage},
		{name: "malformed input", args: nil, input: `[1,`, expected: format.ErrUnexpectedEOF},
		{name: "bson top-level null", args: []string{"--to", "bson"}, input: `null`, expected: format.ErrNotContainer},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := runString(t, tt.input, tt.args...)
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	_, usage, err := runString(t, "", "--help")
	require.NoError(t, err)
	assert.Contains(t, usage, "--from")
}
