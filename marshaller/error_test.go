package marshaller //nolint:testpackage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	graphcodec "github.com/tarantool/go-graphcodec"
)

func TestMarshalError(t *testing.T) {
	t.Parallel()

	parentErr := errors.New("cycle in value graph")

	err := errMarshal(graphcodec.CBOR, parentErr)
	require.Error(t, err)
	assert.Equal(t, "failed to marshal cbor: cycle in value graph", err.Error())
	require.ErrorIs(t, err, parentErr)

	var marshalErr MarshalError
	require.ErrorAs(t, err, &marshalErr)
	assert.Equal(t, graphcodec.CBOR, marshalErr.Format())

	require.NoError(t, errMarshal(graphcodec.CBOR, nil))
}

func TestUnmarshalError(t *testing.T) {
	t.Parallel()

	parentErr := errors.New("unexpected end of input")

	err := errUnmarshal(graphcodec.YAML, parentErr)
	require.Error(t, err)
	assert.Equal(t, "failed to unmarshal yaml: unexpected end of input", err.Error())
	require.ErrorIs(t, err, parentErr)

	var unmarshalErr UnmarshalError
	require.ErrorAs(t, err, &unmarshalErr)
	assert.Equal(t, graphcodec.YAML, unmarshalErr.Format())

	require.NoError(t, errUnmarshal(graphcodec.YAML, nil))
}
