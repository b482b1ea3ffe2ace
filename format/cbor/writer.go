package cbor

import (
	"bufio"
	"io"

	fxcbor "github.com/fxamacker/cbor/v2"

	"github.com/tarantool/go-graphcodec/format"
)

// encMode encodes items in their shortest form, except floats, which stay
// doubles. NaN and infinities are not shortened either.
var encMode fxcbor.EncMode //nolint:gochecknoglobals

func init() { //nolint:gochecknoinits
	var err error

	encMode, err = fxcbor.EncOptions{ //nolint:exhaustruct
		ShortestFloat: fxcbor.ShortestFloatNone,
		NaNConvert:    fxcbor.NaNConvertNone,
		InfConvert:    fxcbor.InfConvertNone,
		IndefLength:   fxcbor.IndefLengthAllowed,
	}.EncMode()
	if err != nil {
		panic("cbor: encoder initialization failed: " + err.Error())
	}
}

// Writer writes a document as CBOR.
type Writer struct {
	out    *bufio.Writer
	enc    *fxcbor.Encoder
	scopes *format.ScopeStack
}

var _ format.Writer = (*Writer)(nil)

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer) *Writer {
	out := bufio.NewWriter(w)

	return &Writer{
		out:    out,
		enc:    encMode.NewEncoder(out),
		scopes: format.NewScopeStack(),
	}
}

func (w *Writer) beforeValue() error {
	if name, ok := w.scopes.TakeName(); ok {
		if _, err := w.scopes.BeforeName(); err != nil {
			return err
		}

		if err := w.enc.Encode(name); err != nil {
			return err
		}
	}

	_, err := w.scopes.BeforeValue()

	return err
}

// encode writes one scalar item.
func (w *Writer) encode(v any) error {
	if err := w.beforeValue(); err != nil {
		return err
	}

	return w.enc.Encode(v)
}

func (w *Writer) open(scope format.Scope, start func() error) error {
	if err := w.beforeValue(); err != nil {
		return err
	}

	w.scopes.Push(scope)

	return start()
}

func (w *Writer) close(empty, nonempty format.Scope) error {
	if _, err := w.scopes.Close(empty, nonempty); err != nil {
		return err
	}

	return w.enc.EndIndefinite()
}

// BeginObject implements format.Writer.
func (w *Writer) BeginObject(tag string) error {
	if err := w.open(format.EmptyObject, w.enc.StartIndefiniteMap); err != nil {
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
	return w.open(format.EmptyArray, w.enc.StartIndefiniteArray)
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
	return w.encode(nil)
}

// Bool implements format.Writer.
func (w *Writer) Bool(v bool) error {
	return w.encode(v)
}

// Int32 implements format.Writer.
func (w *Writer) Int32(v int32) error {
	return w.Int64(int64(v))
}

// Int64 implements format.Writer. Negative values use major type 1 with
// the argument -1-v.
func (w *Writer) Int64(v int64) error {
	return w.encode(v)
}

// Float32 implements format.Writer. The value is written as a double.
func (w *Writer) Float32(v float32) error {
	return w.Float64(float64(v))
}

// Float64 implements format.Writer.
func (w *Writer) Float64(v float64) error {
	return w.encode(v)
}

// String implements format.Writer.
func (w *Writer) String(v string) error {
	return w.encode(v)
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
