package typeinfo_test

import (
	"errors"
	"math/big"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-graphcodec/typeinfo"
)

type Point struct {
	X, Y int
}

type Color int

const (
	Red Color = iota
	Green
)

func (c Color) String() string {
	switch c {
	case Red:
		return "RED"
	case Green:
		return "GREEN"
	default:
		return "UNKNOWN"
	}
}

func TestRegistry_Aliases(t *testing.T) {
	t.Parallel()

	r := typeinfo.NewRegistry()

	for name, expected := range map[string]reflect.Type{
		"long":   reflect.TypeFor[int64](),
		"int":    reflect.TypeFor[int32](),
		"string": reflect.TypeFor[string](),
		"date":   reflect.TypeFor[time.Time](),
		"class":  reflect.TypeFor[reflect.Type](),
	} {
		got, err := r.Resolve(name)
		require.NoError(t, err)
		assert.Equal(t, expected, got, name)
		assert.Equal(t, name, r.NameOf(expected))
	}
}

func TestRegistry_NameOfRecordsType(t *testing.T) {
	t.Parallel()

	r := typeinfo.NewRegistry()

	name := r.NameOf(reflect.TypeFor[Point]())
	assert.Equal(t, "github.com/tarantool/go-graphcodec/typeinfo_test.Point", name)

	got, err := r.Resolve(name)
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[Point](), got)

	ptr := r.NameOf(reflect.TypeFor[*Point]())
	assert.Equal(t, "*"+name, ptr)

	got, err = r.Resolve(ptr)
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[*Point](), got)

	assert.Equal(t, "map[string]interface {}", r.NameOf(reflect.TypeFor[map[string]any]()))
}

func TestRegistry_NameCollision(t *testing.T) {
	t.Parallel()

	r := typeinfo.NewRegistry()

	first := func() reflect.Type {
		type local struct{ A int }
		return reflect.TypeFor[local]()
	}()
	second := func() reflect.Type {
		type local struct{ B string }
		return reflect.TypeFor[local]()
	}()

	n1 := r.NameOf(first)
	n2 := r.NameOf(second)
	assert.NotEqual(t, n1, n2)

	got, err := r.Resolve(n2)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestRegistry_UnknownType(t *testing.T) {
	t.Parallel()

	_, err := typeinfo.NewRegistry().Resolve("no.such.Type")
	require.ErrorIs(t, err, typeinfo.ErrUnknownType)

	var typeErr typeinfo.TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "no.such.Type", typeErr.TypeName())
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	r := typeinfo.NewRegistry()
	typeinfo.RegisterType[Point](r, "point")

	got, err := r.Resolve("point")
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[Point](), got)
	assert.Equal(t, "point", r.NameOf(reflect.TypeFor[Point]()))
}

func TestRegistry_Alias(t *testing.T) {
	t.Parallel()

	r := typeinfo.NewRegistry()
	r.Alias("timestamp", reflect.TypeFor[time.Time]())

	got, err := r.Resolve("timestamp")
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[time.Time](), got)
	assert.Equal(t, "date", r.NameOf(reflect.TypeFor[time.Time]()))
}

func TestRegistry_Enum(t *testing.T) {
	t.Parallel()

	r := typeinfo.NewRegistry()
	typeinfo.RegisterEnum(r, Red, Green)

	assert.True(t, r.IsEnum(reflect.TypeFor[Color]()))
	assert.False(t, r.IsEnum(reflect.TypeFor[int]()))

	v, err := r.EnumMember(reflect.TypeFor[Color](), "GREEN")
	require.NoError(t, err)
	assert.Equal(t, Green, v.Interface())

	name, ordinal, ok := r.EnumName(reflect.ValueOf(Green))
	require.True(t, ok)
	assert.Equal(t, "GREEN", name)
	assert.Equal(t, 1, ordinal)

	_, err = r.EnumMember(reflect.TypeFor[Color](), "BLUE")
	require.ErrorIs(t, err, typeinfo.ErrUnknownEnumMember)
}

func TestRegistry_ConcurrentNameOf(t *testing.T) {
	t.Parallel()

	r := typeinfo.NewRegistry()

	var wg sync.WaitGroup

	names := make([]string, 16)
	for i := range names {
		wg.Add(1)

		go func() {
			defer wg.Done()

			names[i] = r.NameOf(reflect.TypeFor[Point]())
		}()
	}

	wg.Wait()

	for _, n := range names {
		assert.Equal(t, names[0], n)
	}
}

type Base struct {
	ID   int
	Name string
}

type Derived struct {
	Base

	Name   string
	Secret string `codec:"-"`
	Alias  int    `codec:"alias"`
	hidden int
}

func TestFields(t *testing.T) {
	t.Parallel()

	meta := typeinfo.Fields(reflect.TypeFor[*Derived]())

	var names []string
	for _, f := range meta.Fields {
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{"Name", "Secret", "alias", "ID", "Base.Name"}, names)

	secret, ok := meta.Lookup("Secret")
	require.True(t, ok)
	assert.True(t, secret.Transient)

	_, ok = meta.Lookup("hidden")
	assert.False(t, ok)

	d := Derived{Base: Base{ID: 1, Name: "inner"}, Name: "outer", Secret: "", Alias: 0, hidden: 0}
	v := reflect.ValueOf(&d).Elem()

	inner, ok := meta.Lookup("Base.Name")
	require.True(t, ok)
	assert.Equal(t, "inner", inner.Get(v).Interface())

	id, ok := meta.Lookup("ID")
	require.True(t, ok)
	id.Settable(v).SetInt(5)
	assert.Equal(t, 5, d.ID)

	assert.Same(t, meta, typeinfo.Fields(reflect.TypeFor[Derived]()))
}

type Node struct {
	*Base

	Next *Node
}

func TestFields_EmbeddedPointer(t *testing.T) {
	t.Parallel()

	meta := typeinfo.Fields(reflect.TypeFor[Node]())

	id, ok := meta.Lookup("ID")
	require.True(t, ok)

	var n Node

	v := reflect.ValueOf(&n).Elem()
	assert.False(t, id.Get(v).IsValid())

	id.Settable(v).SetInt(3)
	require.NotNil(t, n.Base)
	assert.Equal(t, 3, n.ID)
}

type Account struct {
	Owner   string
	Balance *big.Int
}

func TestNew_ZeroValue(t *testing.T) {
	t.Parallel()

	r := typeinfo.NewRegistry()

	v, err := r.New(reflect.TypeFor[Point]())
	require.NoError(t, err)
	assert.Equal(t, Point{}, v.Interface())

	v, err = r.New(reflect.TypeFor[*Point]())
	require.NoError(t, err)
	assert.Equal(t, &Point{}, v.Interface())

	_, err = r.New(reflect.TypeFor[error]())
	require.ErrorIs(t, err, typeinfo.ErrNotInstantiable)
}

func TestNew_Constructors(t *testing.T) {
	t.Parallel()

	r := typeinfo.NewRegistry()

	require.NoError(t, r.RegisterConstructor(func(owner string, balance *big.Int) (*Account, error) {
		if balance == nil {
			return nil, errors.New("balance required")
		}

		return &Account{Owner: owner, Balance: balance}, nil
	}))

	v, err := r.New(reflect.TypeFor[Account]())
	require.NoError(t, err)

	acc := v.Interface().(Account) //nolint:forcetypeassert
	assert.Empty(t, acc.Owner)
	assert.Equal(t, big.NewInt(10), acc.Balance)

	strategy, ok := r.Strategy(reflect.TypeFor[Account]())
	require.True(t, ok)
	assert.Equal(t, "default arguments", strategy)
}

func TestNew_PrefersNoArgConstructor(t *testing.T) {
	t.Parallel()

	r := typeinfo.NewRegistry()

	require.NoError(t, r.RegisterConstructor(func(x int) Point { return Point{X: x, Y: 1} }))
	require.NoError(t, r.RegisterConstructor(func() Point { return Point{X: 7, Y: 7} }))

	v, err := r.New(reflect.TypeFor[Point]())
	require.NoError(t, err)
	assert.Equal(t, Point{X: 7, Y: 7}, v.Interface())
}

func TestNew_AllConstructorsFail(t *testing.T) {
	t.Parallel()

	r := typeinfo.NewRegistry()

	require.NoError(t, r.RegisterConstructor(func() (Point, error) { return Point{}, errors.New("no") }))
	require.NoError(t, r.RegisterConstructor(func(int) Point { panic("boom") }))

	_, err := r.New(reflect.TypeFor[Point]())
	require.ErrorIs(t, err, typeinfo.ErrNotInstantiable)
	assert.Contains(t, err.Error(), "typeinfo_test.Point")
}

func TestRegisterConstructor_Invalid(t *testing.T) {
	t.Parallel()

	r := typeinfo.NewRegistry()

	require.ErrorIs(t, r.RegisterConstructor(42), typeinfo.ErrInvalidConstructor)
	require.ErrorIs(t, r.RegisterConstructor(func() {}), typeinfo.ErrInvalidConstructor)
	require.ErrorIs(t, r.RegisterConstructor(func() (int, int) { return 0, 0 }), typeinfo.ErrInvalidConstructor)
}

func TestSensibleDefaults(t *testing.T) {
	t.Parallel()

	d := typeinfo.SensibleDefaults{}

	assert.Empty(t, d.Default(reflect.TypeFor[string]()).Interface())
	assert.Equal(t, big.NewInt(10), d.Default(reflect.TypeFor[*big.Int]()).Interface())
	assert.NotNil(t, d.Default(reflect.TypeFor[[]int]()).Interface())
	assert.NotNil(t, d.Default(reflect.TypeFor[map[string]int]()).Interface())
	assert.False(t, d.Default(reflect.TypeFor[time.Time]()).Interface().(time.Time).IsZero()) //nolint:forcetypeassert
}
