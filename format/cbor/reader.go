package cbor

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/x448/float16"

	"github.com/tarantool/go-graphcodec/format"
)

// MaxString is the largest accepted text string.
const MaxString = 32 << 20

// Reader parses one document. Integers are delivered as int64, half and
// single precision floats as float32, doubles as float64.
type Reader struct {
	format.HandlerStack

	src    *bufio.Reader
	offset int64
	tmp    [8]byte
}

var _ format.Reader = (*Reader)(nil)

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		HandlerStack: format.HandlerStack{},
		src:          bufio.NewReader(r),
		offset:       0,
		tmp:          [8]byte{},
	}
}

func (r *Reader) framing(err error) error {
	return format.NewFramingError(r.offset, err)
}

func (r *Reader) eof(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return r.framing(format.ErrUnexpectedEOF)
	}

	return err
}

func (r *Reader) readByte() (byte, error) {
	b, err := r.src.ReadByte()
	if err != nil {
		return 0, r.eof(err)
	}

	r.offset++

	return b, nil
}

func (r *Reader) readFull(b []byte) error {
	n, err := io.ReadFull(r.src, b)
	r.offset += int64(n)

	if err != nil {
		return r.eof(err)
	}

	return nil
}

// argument decodes the argument that follows an initial byte. Indefinite
// lengths are reported as -1 when allowed.
func (r *Reader) argument(initial byte) (uint64, bool, error) {
	info := initial & 0x1F //nolint:mnd

	var size int

	switch {
	case info < infoUint8:
		return uint64(info), false, nil
	case info == infoUint8:
		size = 1
	case info == infoUint16:
		size = 2
	case info == infoUint32:
		size = 4
	case info == infoUint64:
		size = 8
	case info == infoIndefinite:
		return 0, true, nil
	default:
		return 0, false, r.framing(fmt.Errorf("%w: additional information %d", format.ErrMalformed, info))
	}

	b := r.tmp[:size]
	if err := r.readFull(b); err != nil {
		return 0, false, err
	}

	switch size {
	case 1:
		return uint64(b[0]), false, nil
	case 2: //nolint:mnd
		return uint64(binary.BigEndian.Uint16(b)), false, nil
	case 4: //nolint:mnd
		return uint64(binary.BigEndian.Uint32(b)), false, nil
	default:
		return binary.BigEndian.Uint64(b), false, nil
	}
}

// length returns a container or string length, or -1 for an indefinite one.
func (r *Reader) length(initial byte) (int64, error) {
	n, indefinite, err := r.argument(initial)

	switch {
	case err != nil:
		return 0, err
	case indefinite:
		return -1, nil
	case n > math.MaxInt32:
		return 0, r.framing(fmt.Errorf("%w: length %d", format.ErrInvalidSize, n))
	default:
		return int64(n), nil
	}
}

func (r *Reader) text(initial byte) (string, error) {
	n, err := r.length(initial)
	if err != nil {
		return "", err
	}

	if n < 0 || n > MaxString {
		return "", r.framing(fmt.Errorf("%w: text string of length %d", format.ErrInvalidSize, n))
	}

	b := make([]byte, n)
	if err := r.readFull(b); err != nil {
		return "", err
	}

	return string(b), nil
}

type frame struct {
	object bool
	// remaining counts elements (pairs for objects); -1 when indefinite.
	remaining int64
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

	var frames []frame

	initial, err := r.readByte()
	if err != nil {
		return err
	}

	if frames, err = r.value(initial, frames); err != nil {
		return err
	}

	for len(frames) > 0 {
		top := &frames[len(frames)-1]

		if top.done() {
			if frames, err = r.closeFrame(frames); err != nil {
				return err
			}

			continue
		}

		initial, err := r.readByte()
		if err != nil {
			return err
		}

		if initial == breakCode {
			if top.remaining >= 0 || !top.expectKey && top.object {
				return r.framing(fmt.Errorf("%w: unexpected break", format.ErrMalformed))
			}

			if frames, err = r.closeFrame(frames); err != nil {
				return err
			}

			continue
		}

		if top.object && top.expectKey {
			if initial>>5 != majorText {
				return format.NewStructuralError(fmt.Errorf("%w: major type %d", format.ErrNonStringKey, initial>>5))
			}

			key, err := r.text(initial)
			if err != nil {
				return err
			}

			if top.remaining > 0 {
				top.remaining--
			}

			top.expectKey = false

			if err := r.Handler().BeginObjectEntry(key); err != nil {
				return err
			}

			continue
		}

		if !top.object && top.remaining > 0 {
			top.remaining--
		}

		if frames, err = r.value(initial, frames); err != nil {
			return err
		}
	}

	if _, err := r.src.ReadByte(); err == nil {
		return r.framing(format.ErrTrailingData)
	}

	return r.Handler().End()
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

// value reads one data item starting with initial. Containers are pushed
// onto frames; scalars are delivered at once.
func (r *Reader) value(initial byte, frames []frame) ([]frame, error) {
	start := r.offset - 1

	switch major := initial >> 5; major {
	case majorUnsigned, majorNegative:
		n, indefinite, err := r.argument(initial)
		if err != nil {
			return frames, err
		}

		if indefinite {
			return frames, r.framing(fmt.Errorf("%w: indefinite integer", format.ErrMalformed))
		}

		v := int64(n) //nolint:gosec
		if major == majorNegative {
			v = ^v
		}

		return frames, r.primitive(v, frames)
	case majorText:
		s, err := r.text(initial)
		if err != nil {
			return frames, err
		}

		return frames, r.primitive(s, frames)
	case majorArray, majorMap:
		n, err := r.length(initial)
		if err != nil {
			return frames, err
		}

		object := major == majorMap
		frames = append(frames, frame{object: object, remaining: n, expectKey: object})

		if object {
			return frames, r.Handler().BeginObject()
		}

		return frames, r.Handler().BeginArray()
	case majorSimple:
		return frames, r.simple(initial, start, frames)
	default:
		return frames, format.NewFramingError(start, fmt.Errorf("%w: major type %d", format.ErrUnsupportedType, major))
	}
}

func (r *Reader) simple(initial byte, start int64, frames []frame) error {
	switch initial {
	case falseCode:
		return r.primitive(false, frames)
	case trueCode:
		return r.primitive(true, frames)
	case nullCode, undefCode:
		return r.primitive(nil, frames)
	case halfCode:
		if err := r.readFull(r.tmp[:2]); err != nil {
			return err
		}

		return r.primitive(float16.Frombits(binary.BigEndian.Uint16(r.tmp[:2])).Float32(), frames)
	case singleCode:
		if err := r.readFull(r.tmp[:4]); err != nil {
			return err
		}

		return r.primitive(math.Float32frombits(binary.BigEndian.Uint32(r.tmp[:4])), frames)
	case doubleCode:
		if err := r.readFull(r.tmp[:8]); err != nil {
			return err
		}

		return r.primitive(math.Float64frombits(binary.BigEndian.Uint64(r.tmp[:8])), frames)
	default:
		return format.NewFramingError(start, fmt.Errorf("%w: simple value 0x%02X", format.ErrUnsupportedType, initial))
	}
}

func (r *Reader) primitive(v any, frames []frame) error {
	if err := r.Handler().Primitive(v); err != nil {
		return err
	}

	return r.valueDone(frames)
}
