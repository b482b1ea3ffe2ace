package tree_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-graphcodec/tree"
)

type stubResolver map[string]reflect.Type

func (r stubResolver) Resolve(name string) (reflect.Type, error) {
	t, ok := r[name]
	if !ok {
		return nil, errors.New("unknown type " + name)
	}

	return t, nil
}

func TestObject_PutInterceptsTypeKey(t *testing.T) {
	t.Parallel()

	obj := tree.NewObject()
	obj.Put(tree.TypeKey, "long")
	obj.Put("value", int64(42))

	tag, ok := obj.Tag()
	require.True(t, ok)
	assert.Equal(t, "long", tag)
	assert.Equal(t, []string{"value"}, obj.Keys())
	assert.False(t, obj.Has(tree.TypeKey))
}

func TestObject_PutKeepsOrder(t *testing.T) {
	t.Parallel()

	obj := tree.NewObject()
	obj.Put("b", 1)
	obj.Put("a", 2)
	obj.Put("b", 3)

	assert.Equal(t, []string{"b", "a"}, obj.Keys())

	v, ok := obj.Get("b")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	var seen []string

	obj.Range(func(key string, _ any) bool {
		seen = append(seen, key)
		return false
	})
	assert.Equal(t, []string{"b"}, seen)
}

func TestObject_Untagged(t *testing.T) {
	t.Parallel()

	obj := tree.NewObject()
	_, ok := obj.Tag()
	assert.False(t, ok)

	obj.SetTag("x")
	tag, ok := obj.Tag()
	require.True(t, ok)
	assert.Equal(t, "x", tag)
}

func TestObject_Classification(t *testing.T) {
	t.Parallel()

	resolver := stubResolver{
		"list": reflect.TypeOf([]string{}),
		"map":  reflect.TypeOf(map[int]string{}),
		"obj":  reflect.TypeOf(struct{}{}),
	}

	tests := []struct {
		name   string
		tag    string
		keys   bool
		items  bool
		isList bool
		isMap  bool
	}{
		{name: "list by tag", tag: "list", items: true, isList: true},
		{name: "map by tag", tag: "map", keys: true, items: true, isMap: true},
		{name: "items on plain type", tag: "obj", items: true},
		{name: "keys without items", tag: "map", keys: true},
		{name: "unknown tag", tag: "nope", items: true},
		{name: "no tag", items: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			obj := tree.NewObject()
			if tt.tag != "" {
				obj.SetTag(tt.tag)
			}

			if tt.keys {
				obj.Put(tree.KeysKey, tree.NewArray())
			}

			if tt.items {
				obj.Put(tree.ItemsKey, tree.NewArray())
			}

			assert.Equal(t, tt.isList, obj.IsList(resolver))
			assert.Equal(t, tt.isMap, obj.IsMap(resolver))
		})
	}
}

func TestObject_ClassificationByBoundInstance(t *testing.T) {
	t.Parallel()

	obj := tree.NewObject()
	obj.Put(tree.ItemsKey, tree.NewArray())
	obj.Bind(reflect.ValueOf(&[]int{}))

	assert.True(t, obj.IsList(nil))
	assert.False(t, obj.IsMap(nil))
}

func TestObject_Indexed(t *testing.T) {
	t.Parallel()

	obj := tree.NewObject()
	obj.Put("0", "a")
	obj.Put("1", int64(2))

	arr, ok := obj.Indexed()
	require.True(t, ok)
	assert.Equal(t, []any{"a", int64(2)}, arr.Elements())

	obj.SetTag("pt")
	_, ok = obj.Indexed()
	assert.False(t, ok)

	for _, keys := range [][]string{nil, {"1"}, {"0", "2"}, {"00"}, {"x"}} {
		obj := tree.NewObject()
		for _, k := range keys {
			obj.Put(k, true)
		}

		_, ok := obj.Indexed()
		assert.False(t, ok, keys)
	}
}

func TestObject_Clear(t *testing.T) {
	t.Parallel()

	obj := tree.NewObject()
	obj.SetTag("t")
	obj.Put("a", 1)
	obj.Clear()

	assert.Equal(t, 0, obj.Len())
	assert.False(t, obj.Has("a"))

	_, ok := obj.Tag()
	assert.True(t, ok)
}

func TestArray(t *testing.T) {
	t.Parallel()

	arr := tree.NewArray()
	arr.Add(int64(1))
	arr.Add(nil)
	arr.Add("x")

	require.Equal(t, 3, arr.Len())
	assert.Equal(t, int64(1), arr.Get(0))
	assert.Nil(t, arr.Get(1))
	assert.Equal(t, []any{int64(1), nil, "x"}, arr.Elements())

	arr.Clear()
	assert.Equal(t, 0, arr.Len())
}
