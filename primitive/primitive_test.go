package primitive_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-graphcodec/primitive"
)

type level int8

func TestIsPrimitive(t *testing.T) {
	t.Parallel()

	for _, v := range []any{true, int8(1), int16(1), int32(1), int64(1), 1, uint8(1),
		uint16(1), uint32(1), uint64(1), float32(1), 1.0, level(1)} {
		assert.True(t, primitive.IsPrimitive(reflect.TypeOf(v)), "%T", v)
	}

	for _, v := range []any{"s", []int{}, struct{}{}, map[string]int{}, complex(1, 1)} {
		assert.False(t, primitive.IsPrimitive(reflect.TypeOf(v)), "%T", v)
	}

	assert.False(t, primitive.IsPrimitive(nil))
}

func TestAliases(t *testing.T) {
	t.Parallel()

	byName := make(map[string]reflect.Type)
	for _, a := range primitive.Aliases() {
		byName[a.Name] = a.Type
	}

	assert.Equal(t, reflect.TypeFor[bool](), byName["boolean"])
	assert.Equal(t, reflect.TypeFor[uint8](), byName["byte"])
	assert.Equal(t, reflect.TypeFor[int16](), byName["short"])
	assert.Equal(t, reflect.TypeFor[int32](), byName["int"])
	assert.Equal(t, reflect.TypeFor[int64](), byName["long"])
	assert.Equal(t, reflect.TypeFor[float32](), byName["float"])
	assert.Equal(t, reflect.TypeFor[float64](), byName["double"])
	assert.Equal(t, reflect.TypeFor[uint16](), byName["char"])
}

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       any
		target   reflect.Type
		expected any
	}{
		{name: "long to int32", in: int64(7), target: reflect.TypeFor[int32](), expected: int32(7)},
		{name: "int32 to int64", in: int32(-7), target: reflect.TypeFor[int64](), expected: int64(-7)},
		{name: "long to named", in: int64(3), target: reflect.TypeFor[level](), expected: level(3)},
		{name: "string to int", in: "12", target: reflect.TypeFor[int](), expected: 12},
		{name: "empty string to int", in: "", target: reflect.TypeFor[int](), expected: 0},
		{name: "empty string to bool", in: "", target: reflect.TypeFor[bool](), expected: false},
		{name: "string to bool", in: "true", target: reflect.TypeFor[bool](), expected: true},
		{name: "string to float", in: "1.5", target: reflect.TypeFor[float64](), expected: 1.5},
		{name: "double to float", in: 1.0625, target: reflect.TypeFor[float32](), expected: float32(1.0625)},
		{name: "long to double", in: int64(2), target: reflect.TypeFor[float64](), expected: 2.0},
		{name: "integral double to int", in: 4.0, target: reflect.TypeFor[int64](), expected: int64(4)},
		{name: "negative long to uint64", in: int64(-1), target: reflect.TypeFor[uint64](),
			expected: uint64(math.MaxUint64)},
		{name: "string to char", in: "A", target: reflect.TypeFor[uint16](), expected: uint16('A')},
		{name: "long to string", in: int64(5), target: reflect.TypeFor[string](), expected: "5"},
		{name: "anything to interface", in: int64(5), target: reflect.TypeFor[any](), expected: int64(5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := primitive.Convert(tt.in, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out.Interface())
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	t.Parallel()

	_, err := primitive.Convert(int64(300), reflect.TypeFor[int8]())
	require.ErrorIs(t, err, primitive.ErrOverflow)

	_, err = primitive.Convert(int64(-1), reflect.TypeFor[uint8]())
	require.ErrorIs(t, err, primitive.ErrOverflow)

	_, err = primitive.Convert(1.5, reflect.TypeFor[int]())
	require.ErrorIs(t, err, primitive.ErrOverflow)

	_, err = primitive.Convert("x", reflect.TypeFor[int]())
	require.Error(t, err)

	_, err = primitive.Convert(true, reflect.TypeFor[float64]())
	require.ErrorIs(t, err, primitive.ErrIncompatible)

	_, err = primitive.Convert(int64(1), reflect.TypeFor[[]int]())
	require.ErrorIs(t, err, primitive.ErrIncompatible)
}
