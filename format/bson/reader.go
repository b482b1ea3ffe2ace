package bson

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/tarantool/go-graphcodec/format"
	"github.com/tarantool/go-graphcodec/internal/options"
)

const (
	// MaxString is the largest accepted string, terminating NUL included.
	MaxString = 32 << 20

	initialBuffer = 1024
	minDocument   = 5
)

// oneByte holds the strings for every single byte so that short keys and
// values of one ASCII letter or digit are not allocated.
var oneByte = func() (out [256]string) { //nolint:nonamedreturns
	for c := range 256 {
		if c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			out[c] = string(rune(c))
		}
	}

	return out
}()

type readerOptions struct {
	rootArray bool
}

// ReaderOption configures a Reader.
type ReaderOption = options.OptionCallback[readerOptions]

// WithRootArray makes the reader report the top-level document as an array.
func WithRootArray() ReaderOption {
	return func(opts *readerOptions) {
		opts.rootArray = true
	}
}

// Reader parses one document. Numbers are delivered as int32, int64 or
// float64.
type Reader struct {
	format.HandlerStack

	src       io.Reader
	buf       []byte
	pos, end  int
	base      int64
	rootArray bool
}

var _ format.Reader = (*Reader)(nil)

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	cfg := options.ApplyOptions(nil, opts)

	return &Reader{
		HandlerStack: format.HandlerStack{},
		src:          r,
		buf:          make([]byte, initialBuffer),
		pos:          0,
		end:          0,
		base:         0,
		rootArray:    cfg.rootArray,
	}
}

// offset returns the number of bytes consumed so far.
func (r *Reader) offset() int64 {
	return r.base + int64(r.pos)
}

func (r *Reader) framing(err error) error {
	return format.NewFramingError(r.offset(), err)
}

// fill makes at least n bytes available in buf[pos:end].
func (r *Reader) fill(n int) error {
	if r.end-r.pos >= n {
		return nil
	}

	copy(r.buf, r.buf[r.pos:r.end])
	r.end -= r.pos
	r.base += int64(r.pos)
	r.pos = 0

	if n > len(r.buf) {
		size := len(r.buf)
		for size < n {
			size *= 2
		}

		grown := make([]byte, size)
		copy(grown, r.buf[:r.end])
		r.buf = grown
	}

	read, err := io.ReadAtLeast(r.src, r.buf[r.end:], n-r.end)
	r.end += read

	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return format.NewFramingError(r.base+int64(r.end), format.ErrUnexpectedEOF)
	case err != nil:
		return err
	}

	return nil
}

func (r *Reader) next(n int) ([]byte, error) {
	if err := r.fill(n); err != nil {
		return nil, err
	}

	b := r.buf[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

func (r *Reader) readByte() (byte, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

func (r *Reader) readInt32() (int32, error) {
	b, err := r.next(4) //nolint:mnd
	if err != nil {
		return 0, err
	}

	return int32(binary.LittleEndian.Uint32(b)), nil //nolint:gosec
}

func (r *Reader) readInt64() (int64, error) {
	b, err := r.next(8) //nolint:mnd
	if err != nil {
		return 0, err
	}

	return int64(binary.LittleEndian.Uint64(b)), nil //nolint:gosec
}

func intern(b []byte) string {
	if len(b) == 1 && oneByte[b[0]] != "" {
		return oneByte[b[0]]
	}

	return string(b)
}

// readCString reads a NUL-terminated element name.
func (r *Reader) readCString() (string, error) {
	scanned := 0

	for {
		if i := bytes.IndexByte(r.buf[r.pos+scanned:r.end], 0); i >= 0 {
			s := intern(r.buf[r.pos : r.pos+scanned+i])
			r.pos += scanned + i + 1

			return s, nil
		}

		scanned = r.end - r.pos
		if scanned >= MaxString {
			return "", r.framing(format.ErrUnterminatedString)
		}

		if err := r.fill(scanned + 1); err != nil {
			return "", err
		}
	}
}

// readString reads a length-prefixed string. Strings shorter than half of the
// buffer are cut from it; longer ones are read straight from the source.
func (r *Reader) readString() (string, error) {
	start := r.offset()

	n, err := r.readInt32()
	if err != nil {
		return "", err
	}

	if n < 1 || n > MaxString {
		return "", format.NewFramingError(start, fmt.Errorf("%w: string of %d bytes", format.ErrInvalidSize, n))
	}

	var data []byte

	if int(n) < len(r.buf)/2 {
		if data, err = r.next(int(n)); err != nil {
			return "", err
		}
	} else {
		data = make([]byte, n)
		buffered := copy(data, r.buf[r.pos:r.end])
		r.pos += buffered

		read, err := io.ReadFull(r.src, data[buffered:])
		r.base += int64(read)

		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return "", r.framing(format.ErrUnexpectedEOF)
			}

			return "", err
		}
	}

	if data[n-1] != 0 {
		return "", r.framing(format.ErrUnterminatedString)
	}

	return intern(data[:n-1]), nil
}

type frame struct {
	start  int64
	length int64
	array  bool
	index  int
}

// Parse implements format.Reader.
func (r *Reader) Parse(h format.ContentHandler) error {
	r.Reset(h)

	if err := r.Handler().Begin(); err != nil {
		return err
	}

	frames := make([]frame, 0, 8) //nolint:mnd

	open := func(array bool) error {
		start := r.offset()

		length, err := r.readInt32()
		if err != nil {
			return err
		}

		if length < minDocument {
			return format.NewFramingError(start, fmt.Errorf("%w: document of %d bytes", format.ErrInvalidSize, length))
		}

		frames = append(frames, frame{start: start, length: int64(length), array: array, index: 0})

		if array {
			return r.Handler().BeginArray()
		}

		return r.Handler().BeginObject()
	}

	if err := open(r.rootArray); err != nil {
		return err
	}

	for len(frames) > 0 {
		top := &frames[len(frames)-1]

		if r.offset()-top.start >= top.length {
			return r.framing(fmt.Errorf("%w: element runs past declared length %d", format.ErrLengthMismatch, top.length))
		}

		typ, err := r.readByte()
		if err != nil {
			return err
		}

		if typ == 0 {
			if consumed := r.offset() - top.start; consumed != top.length {
				return r.framing(fmt.Errorf("%w: declared %d, consumed %d", format.ErrLengthMismatch, top.length, consumed))
			}

			array := top.array
			frames = frames[:len(frames)-1]

			if err := r.endContainer(array, frames); err != nil {
				return err
			}

			continue
		}

		if err := r.entry(typ, top); err != nil {
			return err
		}

		switch typ {
		case typeObject, typeArray:
			if err := open(typ == typeArray); err != nil {
				return err
			}

			continue
		}

		if err := r.scalar(typ); err != nil {
			return err
		}

		if !top.array {
			if err := r.Handler().EndObjectEntry(); err != nil {
				return err
			}
		}
	}

	return r.Handler().End()
}

// entry reads an element name and opens the object entry, or checks the
// index of an array element.
func (r *Reader) entry(typ byte, top *frame) error {
	switch typ {
	case typeDouble, typeString, typeObject, typeArray, typeBool, typeNull, typeInt32, typeInt64:
	default:
		return format.NewFramingError(r.offset()-1, fmt.Errorf("%w: 0x%02X", format.ErrUnsupportedType, typ))
	}

	name, err := r.readCString()
	if err != nil {
		return err
	}

	if !top.array {
		return r.Handler().BeginObjectEntry(name)
	}

	if name != strconv.Itoa(top.index) {
		return format.NewStructuralError(fmt.Errorf("%w: %q at index %d", format.ErrArrayIndex, name, top.index))
	}

	top.index++

	return nil
}

func (r *Reader) endContainer(array bool, parents []frame) error {
	var err error
	if array {
		err = r.Handler().EndArray()
	} else {
		err = r.Handler().EndObject()
	}

	if err != nil {
		return err
	}

	if len(parents) > 0 && !parents[len(parents)-1].array {
		return r.Handler().EndObjectEntry()
	}

	return nil
}

func (r *Reader) scalar(typ byte) error {
	switch typ {
	case typeDouble:
		v, err := r.readInt64()
		if err != nil {
			return err
		}

		return r.Handler().Primitive(math.Float64frombits(uint64(v))) //nolint:gosec
	case typeString:
		s, err := r.readString()
		if err != nil {
			return err
		}

		return r.Handler().Primitive(s)
	case typeBool:
		b, err := r.readByte()
		if err != nil {
			return err
		}

		if b > 1 {
			return r.framing(fmt.Errorf("%w: boolean 0x%02X", format.ErrMalformed, b))
		}

		return r.Handler().Primitive(b == 1)
	case typeNull:
		return r.Handler().Primitive(nil)
	case typeInt32:
		v, err := r.readInt32()
		if err != nil {
			return err
		}

		return r.Handler().Primitive(v)
	default:
		v, err := r.readInt64()
		if err != nil {
			return err
		}

		return r.Handler().Primitive(v)
	}
}
