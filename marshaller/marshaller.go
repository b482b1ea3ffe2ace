// Package marshaller binds the codec to a single wire format behind small
// Marshal/Unmarshal interfaces.
package marshaller

import (
	graphcodec "github.com/tarantool/go-graphcodec"
)

// FormatMarshaller encodes and decodes documents of one format.
type FormatMarshaller struct {
	format graphcodec.Format
	opts   []graphcodec.Option
}

// New creates a FormatMarshaller for f. The options are passed to every
// encode and decode.
func New(f graphcodec.Format, opts ...graphcodec.Option) FormatMarshaller {
	return FormatMarshaller{format: f, opts: opts}
}

// Format returns the wire format.
func (m FormatMarshaller) Format() graphcodec.Format {
	return m.format
}

// Marshal implements Marshaller.
func (m FormatMarshaller) Marshal(data any) ([]byte, error) {
	marshalled, err := graphcodec.Marshal(m.format, data, m.opts...)
	if err != nil {
		return []byte{}, errMarshal(m.format, err)
	}

	return marshalled, nil
}

// Unmarshal implements Marshaller.
func (m FormatMarshaller) Unmarshal(data []byte, out any) error {
	return errUnmarshal(m.format, graphcodec.Unmarshal(m.format, data, out, m.opts...))
}
