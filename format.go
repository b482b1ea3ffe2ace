package graphcodec

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/tarantool/go-graphcodec/format"
	"github.com/tarantool/go-graphcodec/format/bson"
	"github.com/tarantool/go-graphcodec/format/cbor"
	"github.com/tarantool/go-graphcodec/format/json"
	"github.com/tarantool/go-graphcodec/format/msgpack"
	"github.com/tarantool/go-graphcodec/format/yaml"
)

// Format names a wire format.
type Format int

// Supported formats.
const (
	JSON Format = iota
	BSON
	CBOR
	MsgPack
	YAML
)

var formatNames = []string{
	JSON:    "json",
	BSON:    "bson",
	CBOR:    "cbor",
	MsgPack: "msgpack",
	YAML:    "yaml",
}

// Formats returns every supported format.
func Formats() []Format {
	return []Format{JSON, BSON, CBOR, MsgPack, YAML}
}

// String returns the lower-case name of the format.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}

	return formatNames[f]
}

// ParseFormat returns the format with the given name, ignoring case.
func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if strings.EqualFold(n, name) {
			return Format(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// NewWriter returns a Writer of format f writing to w.
func (f Format) NewWriter(w io.Writer) (format.Writer, error) {
	switch f {
	case JSON:
		return json.NewWriter(w), nil
	case BSON:
		return bson.NewWriter(w), nil
	case CBOR:
		return cbor.NewWriter(w), nil
	case MsgPack:
		return msgpack.NewWriter(w), nil
	case YAML:
		return yaml.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// NewReader returns a Reader of format f reading from r.
func (f Format) NewReader(r io.Reader) (format.Reader, error) {
	switch f {
	case JSON:
		return json.NewReader(r), nil
	case BSON:
		return bson.NewReader(r), nil
	case CBOR:
		return cbor.NewReader(r), nil
	case MsgPack:
		return msgpack.NewReader(r), nil
	case YAML:
		return yaml.NewReader(r), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// Marshal encodes v as one document of format f.
func Marshal(f Format, v any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer

	w, err := f.NewWriter(&buf)
	if err != nil {
		return nil, err
	}

	if err := NewEncoder(opts...).Encode(w, v); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes one document of format f into the value out points to.
func Unmarshal(f Format, data []byte, out any, opts ...Option) error {
	r, err := f.NewReader(bytes.NewReader(data))
	if err != nil {
		return err
	}

	return NewDecoder(opts...).DecodeInto(r, out)
}
