package format

import (
	"fmt"

	"github.com/tarantool/go-graphcodec/tree"
)

// OpenList implements Writer.BeginList on top of the object and array calls.
func OpenList(w Writer, tag string) error {
	if err := w.BeginObject(tag); err != nil {
		return err
	}

	if err := w.PropertyName(ItemsProperty); err != nil {
		return err
	}

	return w.BeginArray()
}

// CloseList implements Writer.EndList.
func CloseList(w Writer) error {
	if err := w.EndArray(); err != nil {
		return err
	}

	return w.EndObject()
}

// OpenNamedArray writes name and opens an array under it. It implements
// Writer.BeginKeys and Writer.BeginItems.
func OpenNamedArray(w Writer, name string) error {
	if err := w.PropertyName(name); err != nil {
		return err
	}

	return w.BeginArray()
}

// WriteScalar writes a decoded scalar.
func WriteScalar(w Writer, v any) error {
	switch x := v.(type) {
	case nil:
		return w.Null()
	case bool:
		return w.Bool(x)
	case int32:
		return w.Int32(x)
	case int64:
		return w.Int64(x)
	case int:
		return w.Int64(int64(x))
	case float32:
		return w.Float32(x)
	case float64:
		return w.Float64(x)
	case string:
		return w.String(x)
	default:
		return errUsage(fmt.Errorf("%w: %T", ErrUnsupportedValue, v))
	}
}

type emitFrame struct {
	obj *tree.Object
	arr *tree.Array
	pos int
}

// Emit writes a Value Tree (or a scalar) as one document through w. Tagged
// objects keep their $type; $keys and $items are written as ordinary
// entries. Emit does not close w.
func Emit(w Writer, root any) error {
	var stack []emitFrame

	open := func(v any) error {
		switch n := v.(type) {
		case *tree.Object:
			tag, _ := n.Tag()
			if err := w.BeginObject(tag); err != nil {
				return err
			}

			stack = append(stack, emitFrame{obj: n, arr: nil, pos: 0})
		case *tree.Array:
			if err := w.BeginArray(); err != nil {
				return err
			}

			stack = append(stack, emitFrame{obj: nil, arr: n, pos: 0})
		default:
			return WriteScalar(w, v)
		}

		return nil
	}

	if err := open(root); err != nil {
		return err
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		switch {
		case top.obj != nil && top.pos < top.obj.Len():
			key := top.obj.Keys()[top.pos]
			top.pos++

			value, _ := top.obj.Get(key)

			if err := w.PropertyName(key); err != nil {
				return err
			}

			if err := open(value); err != nil {
				return err
			}
		case top.obj != nil:
			stack = stack[:len(stack)-1]

			if err := w.EndObject(); err != nil {
				return err
			}
		case top.pos < top.arr.Len():
			value := top.arr.Get(top.pos)
			top.pos++

			if err := open(value); err != nil {
				return err
			}
		default:
			stack = stack[:len(stack)-1]

			if err := w.EndArray(); err != nil {
				return err
			}
		}
	}

	return nil
}
