package testing

import (
	"testing"

	"github.com/tarantool/go-graphcodec/format"
	"github.com/tarantool/go-graphcodec/tree"
)

// TreeBuilder is a minimal format.ContentHandler that collects a document
// into a Value Tree without any type handling.
type TreeBuilder struct {
	format.BaseHandler

	Root  any
	stack []any
	keys  []string
}

var _ format.ContentHandler = (*TreeBuilder)(nil)

// Begin implements format.ContentHandler.
func (b *TreeBuilder) Begin() error { return nil }

// End implements format.ContentHandler.
func (b *TreeBuilder) End() error { return nil }

// BeginObject implements format.ContentHandler.
func (b *TreeBuilder) BeginObject() error {
	b.stack = append(b.stack, tree.NewObject())
	return nil
}

// EndObject implements format.ContentHandler.
func (b *TreeBuilder) EndObject() error { return b.pop() }

// BeginObjectEntry implements format.ContentHandler.
func (b *TreeBuilder) BeginObjectEntry(key string) error {
	b.keys = append(b.keys, key)
	return nil
}

// EndObjectEntry implements format.ContentHandler.
func (b *TreeBuilder) EndObjectEntry() error { return nil }

// BeginArray implements format.ContentHandler.
func (b *TreeBuilder) BeginArray() error {
	b.stack = append(b.stack, tree.NewArray())
	return nil
}

// EndArray implements format.ContentHandler.
func (b *TreeBuilder) EndArray() error { return b.pop() }

// Primitive implements format.ContentHandler.
func (b *TreeBuilder) Primitive(v any) error {
	b.attach(v)
	return nil
}

func (b *TreeBuilder) pop() error {
	node := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.attach(node)

	return nil
}

func (b *TreeBuilder) attach(v any) {
	if len(b.stack) == 0 {
		b.Root = v
		return
	}

	switch parent := b.stack[len(b.stack)-1].(type) {
	case *tree.Object:
		key := b.keys[len(b.keys)-1]
		b.keys = b.keys[:len(b.keys)-1]
		parent.Put(key, v)
	case *tree.Array:
		parent.Add(v)
	}
}

// Tree parses one document from reader into a Value Tree.
func Tree(t testing.TB, reader format.Reader) any {
	t.Helper()

	var b TreeBuilder
	if err := reader.Parse(&b); err != nil {
		t.Fatalf("parse: %v", err)
	}

	return b.Root
}
