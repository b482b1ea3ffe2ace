package marshaller_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	graphcodec "github.com/tarantool/go-graphcodec"
	"github.com/tarantool/go-graphcodec/marshaller"
	"github.com/tarantool/go-graphcodec/typeinfo"
)

func TestTyped_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, f := range graphcodec.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()

			m := marshaller.NewTyped[Item](f, graphcodec.WithRegistry(registry()))

			data, err := m.Marshal(Item{Title: "a", Link: "b"})
			require.NoError(t, err)

			out, err := m.Unmarshal(data)
			require.NoError(t, err)
			assert.Equal(t, Item{Title: "a", Link: "b"}, out)
		})
	}
}

func TestTyped_Pointer(t *testing.T) {
	t.Parallel()

	m := marshaller.NewTyped[*Item](graphcodec.JSON, graphcodec.WithRegistry(registry()))

	data, err := m.Marshal(&Item{Title: "a", Link: ""})
	require.NoError(t, err)
	assert.JSONEq(t, `{"$type":"*item","Title":"a","Link":""}`, string(data))

	out, err := m.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, &Item{Title: "a", Link: ""}, out)

	out, err = m.Unmarshal([]byte(`null`))
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestTyped_Slice(t *testing.T) {
	t.Parallel()

	m := marshaller.NewTyped[[]int64](graphcodec.CBOR)

	data, err := m.Marshal([]int64{19, 20})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x9F, 0x13, 0x14, 0xFF}, data)

	out, err := m.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, []int64{19, 20}, out)
}

func TestTyped_Errors(t *testing.T) {
	t.Parallel()

	r := typeinfo.NewRegistry()
	m := marshaller.NewTyped[Item](graphcodec.JSON, graphcodec.WithRegistry(r))

	out, err := m.Unmarshal([]byte(`{"$type":"unknown.Item"}`))
	require.ErrorIs(t, err, typeinfo.ErrUnknownType)
	assert.Equal(t, Item{Title: "", Link: ""}, out)

	var unmarshalErr marshaller.UnmarshalError
	require.ErrorAs(t, err, &unmarshalErr)
}
