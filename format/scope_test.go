package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-graphcodec/format"
)

func TestScopeStack_SingleTopLevelValue(t *testing.T) {
	t.Parallel()

	s := format.NewScopeStack()
	require.ErrorIs(t, s.Complete(), format.ErrIncomplete)

	prev, err := s.BeforeValue()
	require.NoError(t, err)
	assert.Equal(t, format.EmptyDocument, prev)
	require.NoError(t, s.Complete())

	_, err = s.BeforeValue()
	require.ErrorIs(t, err, format.ErrMultipleTopLevel)

	var usage format.UsageError
	require.ErrorAs(t, err, &usage)
}

func TestScopeStack_ObjectEntries(t *testing.T) {
	t.Parallel()

	s := format.NewScopeStack()

	_, err := s.BeforeValue()
	require.NoError(t, err)
	s.Push(format.EmptyObject)

	_, err = s.BeforeValue()
	require.ErrorIs(t, err, format.ErrNesting, "value without a name")

	comma, err := s.BeforeName()
	require.NoError(t, err)
	assert.False(t, comma)

	prev, err := s.BeforeValue()
	require.NoError(t, err)
	assert.Equal(t, format.DanglingName, prev)
	assert.Equal(t, format.NonemptyObject, s.Peek())

	comma, err = s.BeforeName()
	require.NoError(t, err)
	assert.True(t, comma)

	_, err = s.BeforeValue()
	require.NoError(t, err)

	top, err := s.Close(format.EmptyObject, format.NonemptyObject)
	require.NoError(t, err)
	assert.Equal(t, format.NonemptyObject, top)
	require.NoError(t, s.Complete())
}

func TestScopeStack_Mismatch(t *testing.T) {
	t.Parallel()

	s := format.NewScopeStack()

	_, err := s.BeforeValue()
	require.NoError(t, err)
	s.Push(format.EmptyArray)

	_, err = s.Close(format.EmptyObject, format.NonemptyObject)
	require.ErrorIs(t, err, format.ErrNesting)

	_, err = s.BeforeName()
	require.ErrorIs(t, err, format.ErrNesting)

	_, err = s.Close(format.EmptyArray, format.NonemptyArray)
	require.NoError(t, err)

	_, err = s.Close(format.EmptyArray, format.NonemptyArray)
	require.ErrorIs(t, err, format.ErrNesting, "document level cannot be closed")
}

func TestScopeStack_DeferredName(t *testing.T) {
	t.Parallel()

	s := format.NewScopeStack()
	require.ErrorIs(t, s.SetName("a"), format.ErrNesting)

	_, err := s.BeforeValue()
	require.NoError(t, err)
	s.Push(format.EmptyObject)

	require.NoError(t, s.SetName("a"))
	require.ErrorIs(t, s.SetName("b"), format.ErrDanglingName)

	_, err = s.Close(format.EmptyObject, format.NonemptyObject)
	require.ErrorIs(t, err, format.ErrDanglingName)

	name, ok := s.TakeName()
	require.True(t, ok)
	assert.Equal(t, "a", name)

	_, ok = s.TakeName()
	assert.False(t, ok)
}
