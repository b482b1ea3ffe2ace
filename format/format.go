// Package format defines the push-style Writer and pull-style Reader
// contracts shared by every wire format, together with the scope state
// machine and handler stack the backends are built on.
//
// Backends live in subpackages: json, bson, cbor, msgpack and yaml.
package format

import (
	"github.com/tarantool/go-graphcodec/tree"
)

// Writer receives a document as a sequence of structural and scalar calls
// and enforces its well-formedness.
type Writer interface {
	// BeginObject opens a field bag and writes the $type property first.
	// An empty tag opens an untagged object.
	BeginObject(tag string) error
	EndObject() error
	BeginArray() error
	EndArray() error
	// BeginList opens an object with $type and a nested $items array.
	BeginList(tag string) error
	EndList() error
	// BeginMap opens an object with $type; BeginKeys and BeginItems open
	// its $keys and $items arrays.
	BeginMap(tag string) error
	EndMap() error
	BeginKeys() error
	EndKeys() error
	BeginItems() error
	EndItems() error
	// PropertyName defers name until the next value.
	PropertyName(name string) error
	Null() error
	Bool(v bool) error
	Int32(v int32) error
	Int64(v int64) error
	Float32(v float32) error
	Float64(v float64) error
	String(v string) error
	Flush() error
	// Close fails unless exactly one top-level value was written. It
	// flushes but does not close the underlying stream.
	Close() error
}

// ContentHandler receives parse events.
type ContentHandler interface {
	Begin() error
	End() error
	BeginObject() error
	EndObject() error
	BeginObjectEntry(key string) error
	EndObjectEntry() error
	BeginArray() error
	EndArray() error
	// Primitive receives a decoded scalar or nil.
	Primitive(v any) error
}

// Reader parses one document and drives the handler on top of its stack.
type Reader interface {
	Parse(h ContentHandler) error
	PushHandler(h ContentHandler)
	PopHandler()
	NewObject() *tree.Object
	NewArray() *tree.Array
}

// Property names used by the typed collection calls.
const (
	TypeProperty  = tree.TypeKey
	ItemsProperty = tree.ItemsKey
	KeysProperty  = tree.KeysKey
)

// HandlerStack implements the handler-stack half of Reader. Backends embed
// it and send every event to Handler().
type HandlerStack struct {
	handlers []ContentHandler
}

// Reset makes h the only handler.
func (s *HandlerStack) Reset(h ContentHandler) {
	s.handlers = append(s.handlers[:0], h)
}

// PushHandler makes h receive events until it is popped.
func (s *HandlerStack) PushHandler(h ContentHandler) {
	s.handlers = append(s.handlers, h)
}

// PopHandler restores the previous handler.
func (s *HandlerStack) PopHandler() {
	if len(s.handlers) > 0 {
		s.handlers[len(s.handlers)-1] = nil
		s.handlers = s.handlers[:len(s.handlers)-1]
	}
}

// Handler returns the active handler.
func (s *HandlerStack) Handler() ContentHandler {
	if len(s.handlers) == 0 {
		return BaseHandler{}
	}

	return s.handlers[len(s.handlers)-1]
}

// NewObject implements Reader.
func (s *HandlerStack) NewObject() *tree.Object {
	return tree.NewObject()
}

// NewArray implements Reader.
func (s *HandlerStack) NewArray() *tree.Array {
	return tree.NewArray()
}

// BaseHandler rejects every event. Handlers embed it and override the
// events they accept.
type BaseHandler struct{}

func unexpected(event string) error {
	return NewStructuralError(wrapf(ErrUnexpectedEvent, "%s", event))
}

// Begin implements ContentHandler.
func (BaseHandler) Begin() error { return unexpected("begin") }

// End implements ContentHandler.
func (BaseHandler) End() error { return unexpected("end") }

// BeginObject implements ContentHandler.
func (BaseHandler) BeginObject() error { return unexpected("object") }

// EndObject implements ContentHandler.
func (BaseHandler) EndObject() error { return unexpected("end of object") }

// BeginObjectEntry implements ContentHandler.
func (BaseHandler) BeginObjectEntry(key string) error { return unexpected("entry " + key) }

// EndObjectEntry implements ContentHandler.
func (BaseHandler) EndObjectEntry() error { return unexpected("end of entry") }

// BeginArray implements ContentHandler.
func (BaseHandler) BeginArray() error { return unexpected("array") }

// EndArray implements ContentHandler.
func (BaseHandler) EndArray() error { return unexpected("end of array") }

// Primitive implements ContentHandler.
func (BaseHandler) Primitive(any) error { return unexpected("primitive") }
