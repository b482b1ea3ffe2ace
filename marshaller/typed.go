package marshaller

import (
	graphcodec "github.com/tarantool/go-graphcodec"
)

// Typed is a FormatMarshaller for values of type T.
type Typed[T any] struct {
	FormatMarshaller
}

// NewTyped creates a Typed marshaller for f.
func NewTyped[T any](f graphcodec.Format, opts ...graphcodec.Option) Typed[T] {
	return Typed[T]{FormatMarshaller: New(f, opts...)}
}

// Marshal serializes data.
func (m Typed[T]) Marshal(data T) ([]byte, error) {
	return m.FormatMarshaller.Marshal(data)
}

func zero[T any]() T {
	var out T
	return out
}

// Unmarshal deserializes a document into a new T.
func (m Typed[T]) Unmarshal(data []byte) (T, error) {
	var out T

	if err := m.FormatMarshaller.Unmarshal(data, &out); err != nil {
		return zero[T](), err
	}

	return out, nil
}
