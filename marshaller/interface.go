package marshaller

// Marshaller turns any value into a document of one format and back.
type Marshaller interface {
	Marshal(data any) ([]byte, error)
	Unmarshal(data []byte, out any) error
}

// TypedMarshaller is Marshaller fixed to a single Go type.
type TypedMarshaller[T any] interface {
	Marshal(data T) ([]byte, error)
	Unmarshal(data []byte) (T, error)
}

var (
	_ Marshaller                = FormatMarshaller{}
	_ TypedMarshaller[struct{}] = Typed[struct{}]{}
)
