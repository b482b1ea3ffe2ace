package msgpack

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"github.com/tarantool/go-graphcodec/format"
)

// Reader parses one document. Integers are delivered as int64, floats as
// float32 or float64.
type Reader struct {
	format.HandlerStack

	src *bufio.Reader
	dec *msgpack.Decoder
}

var _ format.Reader = (*Reader)(nil)

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader) *Reader {
	src := bufio.NewReader(r)

	return &Reader{
		HandlerStack: format.HandlerStack{},
		src:          src,
		dec:          msgpack.NewDecoder(src),
	}
}

// framing reports a problem in the input. The decoder does not expose its
// position, so the offset is unknown.
func framing(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		err = format.ErrUnexpectedEOF
	}

	return format.NewFramingError(-1, err)
}

type frame struct {
	object    bool
	remaining int
	expectKey bool
}

func (f *frame) done() bool {
	return f.remaining == 0 && (!f.object || f.expectKey)
}

// Parse implements format.Reader.
func (r *Reader) Parse(h format.ContentHandler) error {
	r.Reset(h)

	if err := r.Handler().Begin(); err != nil {
		return err
	}

	frames, err := r.value(nil)
	if err != nil {
		return err
	}

	for len(frames) > 0 {
		top := &frames[len(frames)-1]

		switch {
		case top.done():
			frames, err = r.closeFrame(frames)
		case top.object && top.expectKey:
			err = r.key(top)
		default:
			if !top.object {
				top.remaining--
			}

			frames, err = r.value(frames)
		}

		if err != nil {
			return err
		}
	}

	if _, err := r.src.Peek(1); err == nil {
		return framing(format.ErrTrailingData)
	}

	return r.Handler().End()
}

func (r *Reader) key(top *frame) error {
	c, err := r.dec.PeekCode()
	if err != nil {
		return framing(err)
	}

	if !msgpcode.IsString(c) {
		return format.NewStructuralError(fmt.Errorf("%w: code 0x%02X", format.ErrNonStringKey, c))
	}

	key, err := r.dec.DecodeString()
	if err != nil {
		return framing(err)
	}

	top.remaining--
	top.expectKey = false

	return r.Handler().BeginObjectEntry(key)
}

func (r *Reader) closeFrame(frames []frame) ([]frame, error) {
	object := frames[len(frames)-1].object
	frames = frames[:len(frames)-1]

	var err error
	if object {
		err = r.Handler().EndObject()
	} else {
		err = r.Handler().EndArray()
	}

	if err != nil {
		return frames, err
	}

	return frames, r.valueDone(frames)
}

func (r *Reader) valueDone(frames []frame) error {
	if len(frames) == 0 || !frames[len(frames)-1].object {
		return nil
	}

	frames[len(frames)-1].expectKey = true

	return r.Handler().EndObjectEntry()
}

func isInt(c byte) bool {
	return msgpcode.IsFixedNum(c) || c >= msgpcode.Uint8 && c <= msgpcode.Int64
}

func isMap(c byte) bool {
	return msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32
}

func isArray(c byte) bool {
	return msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32
}

// value reads one item. Containers are pushed onto frames.
func (r *Reader) value(frames []frame) ([]frame, error) {
	c, err := r.dec.PeekCode()
	if err != nil {
		return frames, framing(err)
	}

	var v any

	switch {
	case c == msgpcode.Nil:
		err = r.dec.DecodeNil()
	case c == msgpcode.False, c == msgpcode.True:
		v, err = r.dec.DecodeBool()
	case isInt(c):
		v, err = r.dec.DecodeInt64()
	case c == msgpcode.Float:
		v, err = r.dec.DecodeFloat32()
	case c == msgpcode.Double:
		v, err = r.dec.DecodeFloat64()
	case msgpcode.IsString(c):
		v, err = r.dec.DecodeString()
	case isMap(c), isArray(c):
		return r.open(c, frames)
	default:
		return frames, framing(fmt.Errorf("%w: code 0x%02X", format.ErrUnsupportedType, c))
	}

	if err != nil {
		return frames, framing(err)
	}

	if err := r.Handler().Primitive(v); err != nil {
		return frames, err
	}

	return frames, r.valueDone(frames)
}

func (r *Reader) open(c byte, frames []frame) ([]frame, error) {
	object := isMap(c)

	var (
		n   int
		err error
	)

	if object {
		n, err = r.dec.DecodeMapLen()
	} else {
		n, err = r.dec.DecodeArrayLen()
	}

	if err != nil {
		return frames, framing(err)
	}

	frames = append(frames, frame{object: object, remaining: n, expectKey: object})

	if object {
		return frames, r.Handler().BeginObject()
	}

	return frames, r.Handler().BeginArray()
}
