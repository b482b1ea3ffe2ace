// Package mocks contains minimock mocks of the format contracts.
//
// Regenerate with:
//
//	go generate ./internal/mocks/...
package mocks

//go:generate go tool minimock -i github.com/tarantool/go-graphcodec/format.ContentHandler -o content_handler_mock.go -n ContentHandlerMock -p mocks
//go:generate go tool minimock -i github.com/tarantool/go-graphcodec/format.Writer -o writer_mock.go -n WriterMock -p mocks
