// Package testing contains helpers shared by the format and codec tests.
package testing

import (
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/tarantool/go-graphcodec/format"
)

// Recorder is a format.ContentHandler that logs every event as a short
// string: "begin", "{", "key:", ";", "[", "]", "}", "end" and "%T(%v)" for
// primitives ("null" for nil).
type Recorder struct {
	Events []string
}

var _ format.ContentHandler = (*Recorder)(nil)

func (r *Recorder) add(event string) error {
	r.Events = append(r.Events, event)
	return nil
}

// Begin implements format.ContentHandler.
func (r *Recorder) Begin() error { return r.add("begin") }

// End implements format.ContentHandler.
func (r *Recorder) End() error { return r.add("end") }

// BeginObject implements format.ContentHandler.
func (r *Recorder) BeginObject() error { return r.add("{") }

// EndObject implements format.ContentHandler.
func (r *Recorder) EndObject() error { return r.add("}") }

// BeginObjectEntry implements format.ContentHandler.
func (r *Recorder) BeginObjectEntry(key string) error { return r.add(key + ":") }

// EndObjectEntry implements format.ContentHandler.
func (r *Recorder) EndObjectEntry() error { return r.add(";") }

// BeginArray implements format.ContentHandler.
func (r *Recorder) BeginArray() error { return r.add("[") }

// EndArray implements format.ContentHandler.
func (r *Recorder) EndArray() error { return r.add("]") }

// Primitive implements format.ContentHandler.
func (r *Recorder) Primitive(v any) error {
	if v == nil {
		return r.add("null")
	}

	return r.add(fmt.Sprintf("%T(%v)", v, v))
}

// String returns the events joined by spaces.
func (r *Recorder) String() string {
	return strings.Join(r.Events, " ")
}

// Record parses one document from reader and returns the recorded events.
func Record(t testing.TB, reader format.Reader) string {
	t.Helper()

	rec := &Recorder{Events: nil}
	if err := reader.Parse(rec); err != nil {
		t.Fatalf("parse: %v (events so far: %s)", err, rec)
	}

	return rec.String()
}

// MustHex decodes a hex string, ignoring spaces.
func MustHex(t testing.TB, s string) []byte {
	t.Helper()

	data, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}

	return data
}

// Hex returns the upper-case hex form of data.
func Hex(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}
