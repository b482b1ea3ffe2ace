package marshaller

import (
	"fmt"

	graphcodec "github.com/tarantool/go-graphcodec"
)

// MarshalError is returned when a value cannot be encoded.
type MarshalError struct {
	format graphcodec.Format
	parent error
}

func errMarshal(f graphcodec.Format, parent error) error {
	if parent == nil {
		return nil
	}

	return MarshalError{format: f, parent: parent}
}

// Format returns the format the value was encoded to.
func (e MarshalError) Format() graphcodec.Format {
	return e.format
}

// Unwrap returns the underlying error that caused the marshalling failure.
func (e MarshalError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the marshalling error.
func (e MarshalError) Error() string {
	return fmt.Sprintf("failed to marshal %s: %s", e.format, e.parent)
}

// UnmarshalError is returned when a document cannot be decoded.
type UnmarshalError struct {
	format graphcodec.Format
	parent error
}

func errUnmarshal(f graphcodec.Format, parent error) error {
	if parent == nil {
		return nil
	}

	return UnmarshalError{format: f, parent: parent}
}

// Format returns the format of the document.
func (e UnmarshalError) Format() graphcodec.Format {
	return e.format
}

// Unwrap returns the underlying error that caused the unmarshalling failure.
func (e UnmarshalError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the unmarshalling error.
func (e UnmarshalError) Error() string {
	return fmt.Sprintf("failed to unmarshal %s: %s", e.format, e.parent)
}
