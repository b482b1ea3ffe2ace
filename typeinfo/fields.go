package typeinfo

import (
	"reflect"
	"strings"
	"sync"
)

// TagName is the struct tag key read by Fields.
const TagName = "codec"

// Field describes one serializable struct field.
type Field struct {
	// Name is the key the field is written under.
	Name string
	// Index is the path for reflect.Value.FieldByIndex.
	Index []int
	Type  reflect.Type
	// Transient fields are never written nor assigned.
	Transient bool
}

// Get returns the field of struct value v. The result is invalid when a nil
// embedded pointer lies on the path.
func (f Field) Get(v reflect.Value) reflect.Value {
	fv, err := v.FieldByIndexErr(f.Index)
	if err != nil {
		return reflect.Value{}
	}

	return fv
}

// Settable returns the field of addressable struct value v, allocating nil
// embedded pointers on the path.
func (f Field) Settable(v reflect.Value) reflect.Value {
	for i, x := range f.Index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				v.Set(reflect.New(v.Type().Elem()))
			}

			v = v.Elem()
		}

		v = v.Field(x)
	}

	return v
}

// Meta is the field set of a struct type.
type Meta struct {
	Type   reflect.Type
	Fields []Field
	byName map[string]int
}

// Lookup returns the field written under name.
func (m *Meta) Lookup(name string) (Field, bool) {
	i, ok := m.byName[name]
	if !ok {
		return Field{}, false //nolint:exhaustruct
	}

	return m.Fields[i], true
}

var metas sync.Map // reflect.Type -> *Meta

// Fields returns the field set of struct type t (or of the struct t points
// to). Exported fields come first in declaration order, followed by fields
// promoted from embedded structs, breadth first. A promoted field whose name
// is already taken is qualified with its declaring type: "Base.Name".
func Fields(t reflect.Type) *Meta {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if m, ok := metas.Load(t); ok {
		return m.(*Meta) //nolint:forcetypeassert
	}

	m, _ := metas.LoadOrStore(t, buildMeta(t))

	return m.(*Meta) //nolint:forcetypeassert
}

type pending struct {
	t     reflect.Type
	index []int
}

func buildMeta(t reflect.Type) *Meta {
	meta := &Meta{
		Type:   t,
		Fields: nil,
		byName: make(map[string]int),
	}

	if t.Kind() != reflect.Struct {
		return meta
	}

	queue := []pending{{t: t, index: nil}}
	visited := make(map[reflect.Type]bool)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if visited[cur.t] {
			continue
		}

		visited[cur.t] = true

		for i := range cur.t.NumField() {
			sf := cur.t.Field(i)
			index := append(append(make([]int, 0, len(cur.index)+1), cur.index...), i)
			tag := sf.Tag.Get(TagName)

			if sf.Anonymous && tag == "" {
				ft := sf.Type
				isPtr := ft.Kind() == reflect.Pointer

				if isPtr {
					ft = ft.Elem()
				}

				if ft.Kind() == reflect.Struct {
					if !sf.IsExported() && isPtr {
						continue
					}

					queue = append(queue, pending{t: ft, index: index})

					continue
				}
			}

			if !sf.IsExported() {
				continue
			}

			name, transient := parseTag(sf.Name, tag)
			if _, taken := meta.byName[name]; taken {
				name = cur.t.Name() + "." + name
				if _, taken := meta.byName[name]; taken {
					continue
				}
			}

			meta.byName[name] = len(meta.Fields)
			meta.Fields = append(meta.Fields, Field{
				Name:      name,
				Index:     index,
				Type:      sf.Type,
				Transient: transient,
			})
		}
	}

	return meta
}

func parseTag(fieldName, tag string) (string, bool) {
	if tag == "-" {
		return fieldName, true
	}

	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		name = fieldName
	}

	return name, false
}
