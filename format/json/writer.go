// Package json implements the text wire format.
package json

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tarantool/go-graphcodec/format"
	"github.com/tarantool/go-graphcodec/internal/options"
)

type writerOptions struct {
	indent string
}

// WriterOption configures a Writer.
type WriterOption = options.OptionCallback[writerOptions]

// WithIndent makes the writer break lines with CRLF and indent every level
// with indent.
func WithIndent(indent string) WriterOption {
	return func(opts *writerOptions) {
		opts.indent = indent
	}
}

// Writer writes a document as JSON text.
type Writer struct {
	out    *bufio.Writer
	scopes *format.ScopeStack
	indent string
}

var _ format.Writer = (*Writer)(nil)

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer, opts ...WriterOption) *Writer {
	cfg := options.ApplyOptions(nil, opts)

	return &Writer{
		out:    bufio.NewWriter(w),
		scopes: format.NewScopeStack(),
		indent: cfg.indent,
	}
}

func (w *Writer) newline() {
	if w.indent == "" {
		return
	}

	_, _ = w.out.WriteString("\r\n")

	for range w.scopes.Depth() - 1 {
		_, _ = w.out.WriteString(w.indent)
	}
}

// beforeValue writes the pending property name or the array separator.
func (w *Writer) beforeValue() error {
	if name, ok := w.scopes.TakeName(); ok {
		comma, err := w.scopes.BeforeName()
		if err != nil {
			return err
		}

		if comma {
			_ = w.out.WriteByte(',')
		}

		w.newline()
		w.quote(name)

		if w.indent != "" {
			_, _ = w.out.WriteString(": ")
		} else {
			_ = w.out.WriteByte(':')
		}
	}

	prev, err := w.scopes.BeforeValue()
	if err != nil {
		return err
	}

	switch prev { //nolint:exhaustive
	case format.NonemptyArray:
		_ = w.out.WriteByte(',')
		w.newline()
	case format.EmptyArray:
		w.newline()
	}

	return nil
}

func (w *Writer) open(scope format.Scope, bracket byte) error {
	if err := w.beforeValue(); err != nil {
		return err
	}

	w.scopes.Push(scope)

	return w.out.WriteByte(bracket)
}

func (w *Writer) close(empty, nonempty format.Scope, bracket byte) error {
	top, err := w.scopes.Close(empty, nonempty)
	if err != nil {
		return err
	}

	if top == nonempty {
		w.newline()
	}

	if err := w.out.WriteByte(bracket); err != nil {
		return err
	}

	return w.completed()
}

// completed terminates the line after the top-level value.
func (w *Writer) completed() error {
	if w.indent != "" && w.scopes.Depth() == 1 {
		_, err := w.out.WriteString("\r\n")
		return err
	}

	return nil
}

// BeginObject implements format.Writer.
func (w *Writer) BeginObject(tag string) error {
	if err := w.open(format.EmptyObject, '{'); err != nil {
		return err
	}

	if tag == "" {
		return nil
	}

	if err := w.PropertyName(format.TypeProperty); err != nil {
		return err
	}

	return w.String(tag)
}

// EndObject implements format.Writer.
func (w *Writer) EndObject() error {
	return w.close(format.EmptyObject, format.NonemptyObject, '}')
}

// BeginArray implements format.Writer.
func (w *Writer) BeginArray() error {
	return w.open(format.EmptyArray, '[')
}

// EndArray implements format.Writer.
func (w *Writer) EndArray() error {
	return w.close(format.EmptyArray, format.NonemptyArray, ']')
}

// BeginList implements format.Writer.
func (w *Writer) BeginList(tag string) error { return format.OpenList(w, tag) }

// EndList implements format.Writer.
func (w *Writer) EndList() error { return format.CloseList(w) }

// BeginMap implements format.Writer.
func (w *Writer) BeginMap(tag string) error { return w.BeginObject(tag) }

// EndMap implements format.Writer.
func (w *Writer) EndMap() error { return w.EndObject() }

// BeginKeys implements format.Writer.
func (w *Writer) BeginKeys() error { return format.OpenNamedArray(w, format.KeysProperty) }

// EndKeys implements format.Writer.
func (w *Writer) EndKeys() error { return w.EndArray() }

// BeginItems implements format.Writer.
func (w *Writer) BeginItems() error { return format.OpenNamedArray(w, format.ItemsProperty) }

// EndItems implements format.Writer.
func (w *Writer) EndItems() error { return w.EndArray() }

// PropertyName implements format.Writer.
func (w *Writer) PropertyName(name string) error {
	return w.scopes.SetName(name)
}

func (w *Writer) raw(s string) error {
	if err := w.beforeValue(); err != nil {
		return err
	}

	if _, err := w.out.WriteString(s); err != nil {
		return err
	}

	return w.completed()
}

// Null implements format.Writer.
func (w *Writer) Null() error {
	return w.raw("null")
}

// Bool implements format.Writer.
func (w *Writer) Bool(v bool) error {
	return w.raw(strconv.FormatBool(v))
}

// Int32 implements format.Writer.
func (w *Writer) Int32(v int32) error {
	return w.raw(strconv.FormatInt(int64(v), 10))
}

// Int64 implements format.Writer.
func (w *Writer) Int64(v int64) error {
	return w.raw(strconv.FormatInt(v, 10))
}

// Float32 implements format.Writer.
func (w *Writer) Float32(v float32) error {
	return w.float(float64(v), 32) //nolint:mnd
}

// Float64 implements format.Writer.
func (w *Writer) Float64(v float64) error {
	return w.float(v, 64) //nolint:mnd
}

func (w *Writer) float(v float64, bits int) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return format.NewUsageError(fmt.Errorf("%w: %v", format.ErrNonFinite, v))
	}

	s := strconv.FormatFloat(v, 'g', -1, bits)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}

	return w.raw(s)
}

// String implements format.Writer.
func (w *Writer) String(v string) error {
	if err := w.beforeValue(); err != nil {
		return err
	}

	w.quote(v)

	return w.completed()
}

const hexDigits = "0123456789abcdef"

func (w *Writer) quote(s string) {
	_ = w.out.WriteByte('"')

	start := 0

	for i := range len(s) {
		c := s[i]

		var esc string

		switch {
		case c == '"':
			esc = `\"`
		case c == '\\':
			esc = `\\`
		case c == '\t':
			esc = `\t`
		case c == '\b':
			esc = `\b`
		case c == '\n':
			esc = `\n`
		case c == '\r':
			esc = `\r`
		case c == '\f':
			esc = `\f`
		case c < 0x20: //nolint:mnd
			esc = `\u00` + string(hexDigits[c>>4]) + string(hexDigits[c&0xF])
		default:
			continue
		}

		_, _ = w.out.WriteString(s[start:i])
		_, _ = w.out.WriteString(esc)
		start = i + 1
	}

	_, _ = w.out.WriteString(s[start:])
	_ = w.out.WriteByte('"')
}

// Flush implements format.Writer.
func (w *Writer) Flush() error {
	return w.out.Flush()
}

// Close implements format.Writer.
func (w *Writer) Close() error {
	if err := w.scopes.Complete(); err != nil {
		return err
	}

	return w.out.Flush()
}
