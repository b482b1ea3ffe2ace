// Package graphcodec converts arbitrary Go object graphs into self-describing
// documents and rebuilds equivalent graphs from them.
//
// Every non-primitive value is written with a $type tag naming its Go type
// (or a short alias such as "long" or "date"), so a document can be decoded
// without a schema. The same model is carried by several wire formats, see
// [Format]; the backends live under [github.com/tarantool/go-graphcodec/format].
//
// An [Encoder] walks a value and drives a [format.Writer]. A [Decoder] parses
// a document from a [format.Reader] into a Value Tree
// ([github.com/tarantool/go-graphcodec/tree]) and then materializes native
// values from it without recursion, so document depth is bounded only by
// memory.
//
// Custom handlers for well-known types are kept in the registries of the
// [github.com/tarantool/go-graphcodec/handler] package.
package graphcodec
