package json

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/tarantool/go-graphcodec/format"
	"github.com/tarantool/go-graphcodec/internal/options"
)

type readerOptions struct {
	lenient bool
}

// ReaderOption configures a Reader.
type ReaderOption = options.OptionCallback[readerOptions]

// WithLenient makes the reader accept comments and trailing commas.
func WithLenient() ReaderOption {
	return func(opts *readerOptions) {
		opts.lenient = true
	}
}

// Reader parses one JSON document. Integers are delivered as int64, other
// numbers as float64.
type Reader struct {
	format.HandlerStack

	src     io.Reader
	lenient bool
}

var _ format.Reader = (*Reader)(nil)

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	cfg := options.ApplyOptions(nil, opts)

	return &Reader{
		HandlerStack: format.HandlerStack{},
		src:          r,
		lenient:      cfg.lenient,
	}
}

type frame struct {
	object    bool
	expectKey bool
}

type parser struct {
	*Reader

	dec    *stdjson.Decoder
	frames []frame
}

// Parse implements format.Reader.
func (r *Reader) Parse(h format.ContentHandler) error {
	r.Reset(h)

	src := r.src

	if r.lenient {
		data, err := io.ReadAll(r.src)
		if err != nil {
			return err
		}

		src = bytes.NewReader(jsonc.ToJSON(data))
	}

	dec := stdjson.NewDecoder(src)
	dec.UseNumber()

	p := &parser{Reader: r, dec: dec, frames: nil}

	return p.document()
}

func (p *parser) framing(err error) error {
	return format.NewFramingError(p.dec.InputOffset(), err)
}

func (p *parser) next() (stdjson.Token, error) {
	tok, err := p.dec.Token()

	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return nil, p.framing(format.ErrUnexpectedEOF)
	case err != nil:
		var syntax *stdjson.SyntaxError
		if errors.As(err, &syntax) {
			return nil, format.NewFramingError(syntax.Offset, fmt.Errorf("%w: %w", format.ErrMalformed, err))
		}

		return nil, err
	}

	return tok, nil
}

func (p *parser) document() error {
	if err := p.Handler().Begin(); err != nil {
		return err
	}

	tok, err := p.next()
	if err != nil {
		return err
	}

	// A null document stands for a nil root.
	switch tok.(type) {
	case stdjson.Delim, nil:
	default:
		return p.framing(format.ErrNotContainer)
	}

	for {
		if err := p.token(tok); err != nil {
			return err
		}

		if len(p.frames) == 0 {
			break
		}

		if tok, err = p.next(); err != nil {
			return err
		}
	}

	if _, err := p.dec.Token(); !errors.Is(err, io.EOF) {
		return p.framing(format.ErrTrailingData)
	}

	return p.Handler().End()
}

func (p *parser) top() *frame {
	if len(p.frames) == 0 {
		return nil
	}

	return &p.frames[len(p.frames)-1]
}

func (p *parser) token(tok stdjson.Token) error {
	if top := p.top(); top != nil && top.expectKey {
		if tok == stdjson.Delim('}') {
			p.frames = p.frames[:len(p.frames)-1]

			if err := p.Handler().EndObject(); err != nil {
				return err
			}

			return p.valueDone()
		}

		key, ok := tok.(string)
		if !ok {
			return p.framing(format.ErrNonStringKey)
		}

		top.expectKey = false

		return p.Handler().BeginObjectEntry(key)
	}

	switch x := tok.(type) {
	case stdjson.Delim:
		switch x {
		case '{':
			p.frames = append(p.frames, frame{object: true, expectKey: true})
			return p.Handler().BeginObject()
		case '[':
			p.frames = append(p.frames, frame{object: false, expectKey: false})
			return p.Handler().BeginArray()
		case ']':
			p.frames = p.frames[:len(p.frames)-1]

			if err := p.Handler().EndArray(); err != nil {
				return err
			}

			return p.valueDone()
		default:
			return p.framing(fmt.Errorf("%w: unexpected %q", format.ErrMalformed, x))
		}
	case stdjson.Number:
		v, err := number(x)
		if err != nil {
			return p.framing(fmt.Errorf("%w: %w", format.ErrMalformed, err))
		}

		if err := p.Handler().Primitive(v); err != nil {
			return err
		}
	default:
		if err := p.Handler().Primitive(x); err != nil {
			return err
		}
	}

	return p.valueDone()
}

// valueDone closes the entry a completed value belongs to.
func (p *parser) valueDone() error {
	top := p.top()
	if top == nil || !top.object {
		return nil
	}

	top.expectKey = true

	return p.Handler().EndObjectEntry()
}

// number converts a literal to int64 when it is integral. Integers beyond
// int64 keep the two's-complement bits of their uint64 value.
func number(n stdjson.Number) (any, error) {
	s := n.String()

	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}

		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return int64(u), nil //nolint:gosec
		}
	}

	return strconv.ParseFloat(s, 64)
}
