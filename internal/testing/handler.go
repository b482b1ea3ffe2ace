package testing

import (
	"errors"

	"github.com/gojuno/minimock/v3"

	"github.com/tarantool/go-graphcodec/format"
	"github.com/tarantool/go-graphcodec/internal/mocks"
)

// ErrStop is returned by the handler built with StopAtEntry.
var ErrStop = errors.New("handler stopped")

// WriteEntries writes the document {"a": 1, "b": 2} to w.
func WriteEntries(w format.Writer) error {
	for _, step := range []func() error{
		func() error { return w.BeginObject("") },
		func() error { return w.PropertyName("a") },
		func() error { return w.Int64(1) },
		func() error { return w.PropertyName("b") },
		func() error { return w.Int64(2) },
		w.EndObject,
		w.Close,
	} {
		if err := step(); err != nil {
			return err
		}
	}

	return nil
}

// StopAtEntry returns a handler for the document written by WriteEntries
// that fails with ErrStop when entry "b" begins. Any event past that point
// fails the test.
func StopAtEntry(t minimock.Tester) *mocks.ContentHandlerMock {
	return mocks.NewContentHandlerMock(t).
		BeginMock.Return(nil).
		BeginObjectMock.Return(nil).
		BeginObjectEntryMock.When("a").Then(nil).
		BeginObjectEntryMock.When("b").Then(ErrStop).
		PrimitiveMock.Expect(int64(1)).Return(nil).
		EndObjectEntryMock.Return(nil)
}
