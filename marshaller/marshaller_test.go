package marshaller_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	graphcodec "github.com/tarantool/go-graphcodec"
	"github.com/tarantool/go-graphcodec/format"
	"github.com/tarantool/go-graphcodec/marshaller"
	"github.com/tarantool/go-graphcodec/typeinfo"
)

type Item struct {
	Title string
	Link  string
}

type Feed struct {
	ID     int
	Items  []Item
	Active bool
	Extra  map[string]any
}

func registry() *typeinfo.Registry {
	r := typeinfo.NewRegistry()
	typeinfo.RegisterType[Item](r, "item")
	typeinfo.RegisterType[Feed](r, "feed")

	return r
}

func TestFormatMarshaller_RoundTrip(t *testing.T) {
	t.Parallel()

	in := Feed{
		ID:     7,
		Items:  []Item{{Title: "Link", Link: "https://some.link"}},
		Active: true,
		Extra:  map[string]any{"n": int64(1)},
	}

	for _, f := range graphcodec.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()

			m := marshaller.New(f, graphcodec.WithRegistry(registry()))
			assert.Equal(t, f, m.Format())

			data, err := m.Marshal(in)
			require.NoError(t, err)
			require.NotEmpty(t, data)

			var out Feed
			require.NoError(t, m.Unmarshal(data, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestFormatMarshaller_YAML(t *testing.T) {
	t.Parallel()

	m := marshaller.New(graphcodec.YAML, graphcodec.WithRegistry(registry()))

	data, err := m.Marshal(Item{Title: "Link", Link: "https://some.link"})
	require.NoError(t, err)
	require.YAMLEq(t, `
$type: item
Title: Link
Link: https://some.link
`, string(data))

	var out Item
	require.NoError(t, m.Unmarshal([]byte("$type: item\nTitle: Other\n"), &out))
	assert.Equal(t, Item{Title: "Other", Link: ""}, out)
}

func TestFormatMarshaller_Errors(t *testing.T) {
	t.Parallel()

	m := marshaller.New(graphcodec.JSON, graphcodec.WithRegistry(registry()))

	_, err := m.Marshal(make(chan int))

	var marshalErr marshaller.MarshalError
	require.ErrorAs(t, err, &marshalErr)
	require.ErrorIs(t, err, graphcodec.ErrUnsupportedKind)

	var out Item

	err = m.Unmarshal([]byte(`{"$type":"item",`), &out)

	var unmarshalErr marshaller.UnmarshalError
	require.ErrorAs(t, err, &unmarshalErr)
	assert.Equal(t, graphcodec.JSON, unmarshalErr.Format())

	var framing format.FramingError
	require.ErrorAs(t, err, &framing)
}
