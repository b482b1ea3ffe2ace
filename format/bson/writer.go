// Package bson implements binary format A: length-prefixed documents of
// typed, named elements in the style of BSON.
package bson

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tarantool/go-graphcodec/format"
)

// Element type bytes.
const (
	typeDouble byte = 0x01
	typeString byte = 0x02
	typeObject byte = 0x03
	typeArray  byte = 0x04
	typeBool   byte = 0x08
	typeNull   byte = 0x0A
	typeInt32  byte = 0x10
	typeInt64  byte = 0x12
)

type level struct {
	start int
	index int
}

// Writer builds a document in memory and writes it to the underlying
// stream once it is complete.
type Writer struct {
	out    io.Writer
	buf    []byte
	scopes *format.ScopeStack
	levels []level
}

var _ format.Writer = (*Writer)(nil)

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		out:    w,
		buf:    make([]byte, 0, 256), //nolint:mnd
		scopes: format.NewScopeStack(),
		levels: nil,
	}
}

// element writes the type byte and the name of the next element. The name
// of an array element is its index.
func (w *Writer) element(typ byte) error {
	container := typ == typeObject || typ == typeArray
	if w.scopes.Peek() == format.EmptyDocument && !container {
		return format.NewUsageError(format.ErrNotContainer)
	}

	name, named := w.scopes.TakeName()
	if named {
		if strings.IndexByte(name, 0) >= 0 {
			return format.NewUsageError(fmt.Errorf("%w: %q contains NUL", format.ErrInvalidName, name))
		}

		if _, err := w.scopes.BeforeName(); err != nil {
			return err
		}
	}

	prev, err := w.scopes.BeforeValue()
	if err != nil {
		return err
	}

	switch prev { //nolint:exhaustive
	case format.EmptyDocument:
		return nil
	case format.EmptyArray, format.NonemptyArray:
		lvl := &w.levels[len(w.levels)-1]
		name = strconv.Itoa(lvl.index)
		lvl.index++
	}

	w.buf = append(w.buf, typ)
	w.buf = append(w.buf, name...)
	w.buf = append(w.buf, 0)

	return nil
}

func (w *Writer) open(typ byte, scope format.Scope) error {
	if err := w.element(typ); err != nil {
		return err
	}

	w.levels = append(w.levels, level{start: len(w.buf), index: 0})
	w.buf = append(w.buf, 0, 0, 0, 0)
	w.scopes.Push(scope)

	return nil
}

func (w *Writer) close(empty, nonempty format.Scope) error {
	if _, err := w.scopes.Close(empty, nonempty); err != nil {
		return err
	}

	w.buf = append(w.buf, 0)

	lvl := w.levels[len(w.levels)-1]
	w.levels = w.levels[:len(w.levels)-1]
	binary.LittleEndian.PutUint32(w.buf[lvl.start:], uint32(len(w.buf)-lvl.start)) //nolint:gosec

	return nil
}

// BeginObject implements format.Writer.
func (w *Writer) BeginObject(tag string) error {
	if err := w.open(typeObject, format.EmptyObject); err != nil {
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
	return w.close(format.EmptyObject, format.NonemptyObject)
}

// BeginArray implements format.Writer.
func (w *Writer) BeginArray() error {
	return w.open(typeArray, format.EmptyArray)
}

// EndArray implements format.Writer.
func (w *Writer) EndArray() error {
	return w.close(format.EmptyArray, format.NonemptyArray)
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

// Null implements format.Writer.
func (w *Writer) Null() error {
	return w.element(typeNull)
}

// Bool implements format.Writer.
func (w *Writer) Bool(v bool) error {
	if err := w.element(typeBool); err != nil {
		return err
	}

	if v {
		w.buf = append(w.buf, 1)
	} else {
		w.buf = append(w.buf, 0)
	}

	return nil
}

// Int32 implements format.Writer.
func (w *Writer) Int32(v int32) error {
	if err := w.element(typeInt32); err != nil {
		return err
	}

	w.buf = binary.LittleEndian.AppendUint32(w.buf, uint32(v)) //nolint:gosec

	return nil
}

// Int64 implements format.Writer.
func (w *Writer) Int64(v int64) error {
	if err := w.element(typeInt64); err != nil {
		return err
	}

	w.buf = binary.LittleEndian.AppendUint64(w.buf, uint64(v)) //nolint:gosec

	return nil
}

// Float32 implements format.Writer. The value is stored as a double.
func (w *Writer) Float32(v float32) error {
	return w.Float64(float64(v))
}

// Float64 implements format.Writer.
func (w *Writer) Float64(v float64) error {
	if err := w.element(typeDouble); err != nil {
		return err
	}

	w.buf = binary.LittleEndian.AppendUint64(w.buf, math.Float64bits(v))

	return nil
}

// String implements format.Writer.
func (w *Writer) String(v string) error {
	if err := w.element(typeString); err != nil {
		return err
	}

	w.buf = binary.LittleEndian.AppendUint32(w.buf, uint32(len(v)+1)) //nolint:gosec
	w.buf = append(w.buf, v...)
	w.buf = append(w.buf, 0)

	return nil
}

// Flush implements format.Writer. Only a completed document is written.
func (w *Writer) Flush() error {
	if w.scopes.Depth() > 1 || len(w.buf) == 0 {
		return nil
	}

	_, err := w.out.Write(w.buf)
	w.buf = w.buf[:0]

	return err
}

// Close implements format.Writer.
func (w *Writer) Close() error {
	if err := w.scopes.Complete(); err != nil {
		return err
	}

	return w.Flush()
}
