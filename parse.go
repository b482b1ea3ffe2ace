package graphcodec

import (
	"fmt"

	"github.com/tarantool/go-graphcodec/format"
	"github.com/tarantool/go-graphcodec/tree"
)

// The parse pass builds a Value Tree with one small handler per open
// container, pushed on and popped off the reader's handler stack.

// documentHandler expects exactly one top-level value.
type documentHandler struct {
	format.BaseHandler

	reader format.Reader
	root   any
	seen   bool
}

func (h *documentHandler) value() error {
	if h.seen {
		return format.NewStructuralError(format.ErrMultipleTopLevel)
	}

	h.seen = true

	return nil
}

func (h *documentHandler) Begin() error { return nil }

func (h *documentHandler) End() error {
	if !h.seen {
		return format.NewStructuralError(format.ErrIncomplete)
	}

	return nil
}

func (h *documentHandler) BeginObject() error {
	if err := h.value(); err != nil {
		return err
	}

	obj := h.reader.NewObject()
	h.root = obj
	h.reader.PushHandler(&objectHandler{BaseHandler: format.BaseHandler{}, reader: h.reader, obj: obj})

	return nil
}

func (h *documentHandler) BeginArray() error {
	if err := h.value(); err != nil {
		return err
	}

	arr := h.reader.NewArray()
	h.root = arr
	h.reader.PushHandler(&arrayHandler{BaseHandler: format.BaseHandler{}, reader: h.reader, arr: arr})

	return nil
}

func (h *documentHandler) Primitive(v any) error {
	if err := h.value(); err != nil {
		return err
	}

	if v != nil {
		return format.NewStructuralError(fmt.Errorf("%w: %T", format.ErrUnexpectedTopLevel, v))
	}

	return nil
}

// objectHandler expects entries of obj.
type objectHandler struct {
	format.BaseHandler

	reader format.Reader
	obj    *tree.Object
}

func (h *objectHandler) BeginObjectEntry(key string) error {
	h.reader.PushHandler(&entryHandler{
		BaseHandler: format.BaseHandler{},
		reader:      h.reader,
		obj:         h.obj,
		key:         key,
		filled:      false,
	})

	return nil
}

func (h *objectHandler) EndObject() error {
	h.reader.PopHandler()
	return nil
}

// entryHandler expects the single value of one entry.
type entryHandler struct {
	format.BaseHandler

	reader format.Reader
	obj    *tree.Object
	key    string
	filled bool
}

func (h *entryHandler) fill() error {
	if h.filled {
		return format.NewStructuralError(fmt.Errorf("%w: second value for %q", format.ErrUnexpectedEvent, h.key))
	}

	h.filled = true

	return nil
}

func (h *entryHandler) BeginObject() error {
	if err := h.fill(); err != nil {
		return err
	}

	child := h.reader.NewObject()
	h.obj.Put(h.key, child)
	h.reader.PushHandler(&objectHandler{BaseHandler: format.BaseHandler{}, reader: h.reader, obj: child})

	return nil
}

func (h *entryHandler) BeginArray() error {
	if err := h.fill(); err != nil {
		return err
	}

	child := h.reader.NewArray()
	h.obj.Put(h.key, child)
	h.reader.PushHandler(&arrayHandler{BaseHandler: format.BaseHandler{}, reader: h.reader, arr: child})

	return nil
}

func (h *entryHandler) Primitive(v any) error {
	if err := h.fill(); err != nil {
		return err
	}

	h.obj.Put(h.key, v)

	return nil
}

func (h *entryHandler) EndObjectEntry() error {
	h.reader.PopHandler()
	return nil
}

// arrayHandler expects the elements of arr.
type arrayHandler struct {
	format.BaseHandler

	reader format.Reader
	arr    *tree.Array
}

func (h *arrayHandler) BeginObject() error {
	child := h.reader.NewObject()
	h.arr.Add(child)
	h.reader.PushHandler(&objectHandler{BaseHandler: format.BaseHandler{}, reader: h.reader, obj: child})

	return nil
}

func (h *arrayHandler) BeginArray() error {
	child := h.reader.NewArray()
	h.arr.Add(child)
	h.reader.PushHandler(&arrayHandler{BaseHandler: format.BaseHandler{}, reader: h.reader, arr: child})

	return nil
}

func (h *arrayHandler) Primitive(v any) error {
	h.arr.Add(v)
	return nil
}

func (h *arrayHandler) EndArray() error {
	h.reader.PopHandler()
	return nil
}
