// Package msgpack implements the MessagePack wire format on top of
// github.com/vmihailenco/msgpack/v5.
package msgpack

import (
	"bytes"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/tarantool/go-graphcodec/format"
)

// level buffers one open container: its header needs the element count,
// which is known only when the container is closed.
type level struct {
	buf   bytes.Buffer
	enc   *msgpack.Encoder
	count int
}

func newLevel() *level {
	lvl := &level{buf: bytes.Buffer{}, enc: nil, count: 0}
	lvl.enc = msgpack.NewEncoder(&lvl.buf)

	return lvl
}

// Writer writes a document as MessagePack.
type Writer struct {
	out    io.Writer
	scopes *format.ScopeStack
	levels []*level
}

var _ format.Writer = (*Writer)(nil)

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		out:    w,
		scopes: format.NewScopeStack(),
		levels: []*level{newLevel()},
	}
}

func (w *Writer) current() *level {
	return w.levels[len(w.levels)-1]
}

func (w *Writer) beforeValue() error {
	if name, ok := w.scopes.TakeName(); ok {
		if _, err := w.scopes.BeforeName(); err != nil {
			return err
		}

		if err := w.current().enc.EncodeString(name); err != nil {
			return err
		}
	}

	if _, err := w.scopes.BeforeValue(); err != nil {
		return err
	}

	w.current().count++

	return nil
}

func (w *Writer) open(scope format.Scope) error {
	if err := w.beforeValue(); err != nil {
		return err
	}

	w.scopes.Push(scope)
	w.levels = append(w.levels, newLevel())

	return nil
}

func (w *Writer) close(empty, nonempty format.Scope, object bool) error {
	if _, err := w.scopes.Close(empty, nonempty); err != nil {
		return err
	}

	child := w.current()
	w.levels = w.levels[:len(w.levels)-1]
	parent := w.current()

	var err error
	if object {
		err = parent.enc.EncodeMapLen(child.count)
	} else {
		err = parent.enc.EncodeArrayLen(child.count)
	}

	if err != nil {
		return err
	}

	_, err = parent.buf.Write(child.buf.Bytes())

	return err
}

// BeginObject implements format.Writer.
func (w *Writer) BeginObject(tag string) error {
	if err := w.open(format.EmptyObject); err != nil {
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
	return w.close(format.EmptyObject, format.NonemptyObject, true)
}

// BeginArray implements format.Writer.
func (w *Writer) BeginArray() error {
	return w.open(format.EmptyArray)
}

// EndArray implements format.Writer.
func (w *Writer) EndArray() error {
	return w.close(format.EmptyArray, format.NonemptyArray, false)
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
	if err := w.beforeValue(); err != nil {
		return err
	}

	return w.current().enc.EncodeNil()
}

// Bool implements format.Writer.
func (w *Writer) Bool(v bool) error {
	if err := w.beforeValue(); err != nil {
		return err
	}

	return w.current().enc.EncodeBool(v)
}

// Int32 implements format.Writer.
func (w *Writer) Int32(v int32) error {
	return w.Int64(int64(v))
}

// Int64 implements format.Writer. Integers take their shortest encoding.
func (w *Writer) Int64(v int64) error {
	if err := w.beforeValue(); err != nil {
		return err
	}

	return w.current().enc.EncodeInt(v)
}

// Float32 implements format.Writer.
func (w *Writer) Float32(v float32) error {
	if err := w.beforeValue(); err != nil {
		return err
	}

	return w.current().enc.EncodeFloat32(v)
}

// Float64 implements format.Writer.
func (w *Writer) Float64(v float64) error {
	if err := w.beforeValue(); err != nil {
		return err
	}

	return w.current().enc.EncodeFloat64(v)
}

// String implements format.Writer.
func (w *Writer) String(v string) error {
	if err := w.beforeValue(); err != nil {
		return err
	}

	return w.current().enc.EncodeString(v)
}

// Flush implements format.Writer. Only a completed document is written.
func (w *Writer) Flush() error {
	doc := w.levels[0]
	if len(w.levels) > 1 || doc.buf.Len() == 0 {
		return nil
	}

	_, err := w.out.Write(doc.buf.Bytes())
	doc.buf.Reset()

	return err
}

// Close implements format.Writer.
func (w *Writer) Close() error {
	if err := w.scopes.Complete(); err != nil {
		return err
	}

	return w.Flush()
}
