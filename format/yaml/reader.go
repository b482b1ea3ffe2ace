package yaml

import (
	"fmt"
	"io"
	"math"
	"strconv"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/tarantool/go-graphcodec/format"
)

// Reader parses one YAML document. Integers are delivered as int64, other
// numbers as float64 and every other scalar as a string.
type Reader struct {
	format.HandlerStack

	src io.Reader

	nodes   int
	aliased int
}

var _ format.Reader = (*Reader)(nil)

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{HandlerStack: format.HandlerStack{}, src: r, nodes: 0, aliased: 0}
}

type frame struct {
	node    *yamlv3.Node
	pos     int
	aliased bool
}

// Bounds of the node count over which the allowed share of alias-expanded
// nodes falls from 0.99 to 0.10.
const (
	aliasRatioLow  = 400_000
	aliasRatioHigh = 4_000_000
)

func allowedAliasRatio(nodes int) float64 {
	switch {
	case nodes <= aliasRatioLow:
		return 0.99
	case nodes >= aliasRatioHigh:
		return 0.10
	default:
		return 0.99 - 0.89*float64(nodes-aliasRatioLow)/float64(aliasRatioHigh-aliasRatioLow)
	}
}

// visit counts a delivered node and fails once alias expansion dominates
// the document.
func (r *Reader) visit(n *yamlv3.Node, aliased bool) error {
	r.nodes++
	if aliased {
		r.aliased++
	}

	if r.aliased > 100 && r.nodes > 1000 &&
		float64(r.aliased)/float64(r.nodes) > allowedAliasRatio(r.nodes) {
		return format.NewFramingError(-1, fmt.Errorf("%w: line %d", format.ErrAliasExpansion, n.Line))
	}

	return nil
}

// Parse implements format.Reader.
func (r *Reader) Parse(h format.ContentHandler) error {
	r.Reset(h)
	r.nodes, r.aliased = 0, 0

	data, err := io.ReadAll(r.src)
	if err != nil {
		return err
	}

	var doc yamlv3.Node
	if err := yamlv3.Unmarshal(data, &doc); err != nil {
		return format.NewFramingError(-1, fmt.Errorf("%w: %w", format.ErrMalformed, err))
	}

	if doc.Kind != yamlv3.DocumentNode || len(doc.Content) == 0 {
		return format.NewFramingError(int64(len(data)), format.ErrUnexpectedEOF)
	}

	if err := r.Handler().Begin(); err != nil {
		return err
	}

	frames, err := r.value(doc.Content[0], false, nil)
	if err != nil {
		return err
	}

	for len(frames) > 0 {
		top := &frames[len(frames)-1]

		if top.pos == len(top.node.Content) {
			if frames, err = r.closeFrame(frames); err != nil {
				return err
			}

			continue
		}

		if top.node.Kind == yamlv3.MappingNode {
			key := resolve(top.node.Content[top.pos])
			if key.Kind != yamlv3.ScalarNode || key.ShortTag() != "!!str" {
				return format.NewStructuralError(fmt.Errorf("%w: line %d: %s", format.ErrNonStringKey, key.Line, key.ShortTag()))
			}

			if err := r.Handler().BeginObjectEntry(key.Value); err != nil {
				return err
			}

			top.pos++
		}

		child := top.node.Content[top.pos]
		top.pos++

		if frames, err = r.value(child, top.aliased, frames); err != nil {
			return err
		}
	}

	return r.Handler().End()
}

func resolve(n *yamlv3.Node) *yamlv3.Node {
	for n.Kind == yamlv3.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	return n
}

func (r *Reader) closeFrame(frames []frame) ([]frame, error) {
	node := frames[len(frames)-1].node
	frames = frames[:len(frames)-1]

	var err error
	if node.Kind == yamlv3.MappingNode {
		err = r.Handler().EndObject()
	} else {
		err = r.Handler().EndArray()
	}

	if err != nil {
		return frames, err
	}

	return frames, r.valueDone(frames)
}

func (r *Reader) valueDone(frames []frame) error {
	if len(frames) == 0 || frames[len(frames)-1].node.Kind != yamlv3.MappingNode {
		return nil
	}

	return r.Handler().EndObjectEntry()
}

func (r *Reader) value(n *yamlv3.Node, aliased bool, frames []frame) ([]frame, error) {
	aliased = aliased || n.Kind == yamlv3.AliasNode
	n = resolve(n)

	if err := r.visit(n, aliased); err != nil {
		return frames, err
	}

	switch n.Kind {
	case yamlv3.MappingNode:
		frames = append(frames, frame{node: n, pos: 0, aliased: aliased})
		return frames, r.Handler().BeginObject()
	case yamlv3.SequenceNode:
		frames = append(frames, frame{node: n, pos: 0, aliased: aliased})
		return frames, r.Handler().BeginArray()
	case yamlv3.ScalarNode:
		v, err := scalarValue(n)
		if err != nil {
			return frames, err
		}

		if err := r.Handler().Primitive(v); err != nil {
			return frames, err
		}

		return frames, r.valueDone(frames)
	default:
		return frames, format.NewFramingError(-1, fmt.Errorf("%w: node kind %d at line %d", format.ErrUnsupportedType, n.Kind, n.Line))
	}
}

func scalarValue(n *yamlv3.Node) (any, error) {
	var err error

	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err = n.Decode(&b); err == nil {
			return b, nil
		}
	case "!!int":
		var i int64
		if err = n.Decode(&i); err == nil {
			return i, nil
		}

		var u uint64
		if n.Decode(&u) == nil {
			return int64(u), nil //nolint:gosec
		}

		if f, ferr := strconv.ParseFloat(n.Value, 64); ferr == nil && !math.IsInf(f, 0) {
			return f, nil
		}
	case "!!float":
		var f float64
		if err = n.Decode(&f); err == nil {
			return f, nil
		}
	default:
		return n.Value, nil
	}

	return nil, format.NewFramingError(-1, fmt.Errorf("%w: line %d: %w", format.ErrMalformed, n.Line, err))
}
