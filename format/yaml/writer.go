// Package yaml implements a YAML wire format on top of gopkg.in/yaml.v3.
// Documents are built as a node tree and encoded when complete.
package yaml

import (
	"io"
	"math"
	"strconv"
	"strings"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/tarantool/go-graphcodec/format"
)

// Indent is the number of spaces per nesting level.
const Indent = 2

// Writer writes a document as YAML.
type Writer struct {
	out     io.Writer
	scopes  *format.ScopeStack
	stack   []*yamlv3.Node
	root    *yamlv3.Node
	written bool
}

var _ format.Writer = (*Writer)(nil)

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		out:     w,
		scopes:  format.NewScopeStack(),
		stack:   nil,
		root:    nil,
		written: false,
	}
}

func scalar(tag, value string) *yamlv3.Node {
	return &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: tag, Value: value} //nolint:exhaustruct
}

// add attaches node under its name or as the next element.
func (w *Writer) add(node *yamlv3.Node) error {
	name, named := w.scopes.TakeName()
	if named {
		if _, err := w.scopes.BeforeName(); err != nil {
			return err
		}
	}

	if _, err := w.scopes.BeforeValue(); err != nil {
		return err
	}

	if len(w.stack) == 0 {
		w.root = node
		return nil
	}

	parent := w.stack[len(w.stack)-1]
	if named {
		parent.Content = append(parent.Content, scalar("!!str", name))
	}

	parent.Content = append(parent.Content, node)

	return nil
}

func (w *Writer) open(scope format.Scope, kind yamlv3.Kind) error {
	node := &yamlv3.Node{Kind: kind} //nolint:exhaustruct
	if err := w.add(node); err != nil {
		return err
	}

	w.scopes.Push(scope)
	w.stack = append(w.stack, node)

	return nil
}

func (w *Writer) close(empty, nonempty format.Scope) error {
	if _, err := w.scopes.Close(empty, nonempty); err != nil {
		return err
	}

	w.stack = w.stack[:len(w.stack)-1]

	return nil
}

// BeginObject implements format.Writer.
func (w *Writer) BeginObject(tag string) error {
	if err := w.open(format.EmptyObject, yamlv3.MappingNode); err != nil {
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
	return w.open(format.EmptyArray, yamlv3.SequenceNode)
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
	return w.add(scalar("!!null", "null"))
}

// Bool implements format.Writer.
func (w *Writer) Bool(v bool) error {
	return w.add(scalar("!!bool", strconv.FormatBool(v)))
}

// Int32 implements format.Writer.
func (w *Writer) Int32(v int32) error {
	return w.Int64(int64(v))
}

// Int64 implements format.Writer.
func (w *Writer) Int64(v int64) error {
	return w.add(scalar("!!int", strconv.FormatInt(v, 10)))
}

// Float32 implements format.Writer.
func (w *Writer) Float32(v float32) error {
	return w.add(scalar("!!float", formatFloat(float64(v), 32))) //nolint:mnd
}

// Float64 implements format.Writer.
func (w *Writer) Float64(v float64) error {
	return w.add(scalar("!!float", formatFloat(v, 64))) //nolint:mnd
}

func formatFloat(v float64, bits int) string {
	switch {
	case math.IsNaN(v):
		return ".nan"
	case math.IsInf(v, 1):
		return ".inf"
	case math.IsInf(v, -1):
		return "-.inf"
	}

	s := strconv.FormatFloat(v, 'g', -1, bits)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}

	return s
}

// String implements format.Writer.
func (w *Writer) String(v string) error {
	return w.add(scalar("!!str", v))
}

// Flush implements format.Writer. The document is encoded once complete.
func (w *Writer) Flush() error {
	if w.written || w.root == nil || len(w.stack) > 0 {
		return nil
	}

	enc := yamlv3.NewEncoder(w.out)
	enc.SetIndent(Indent)

	if err := enc.Encode(w.root); err != nil {
		return err
	}

	w.written = true

	return enc.Close()
}

// Close implements format.Writer.
func (w *Writer) Close() error {
	if err := w.scopes.Complete(); err != nil {
		return err
	}

	return w.Flush()
}
