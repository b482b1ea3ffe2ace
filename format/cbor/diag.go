package cbor

import (
	fxcbor "github.com/fxamacker/cbor/v2"
)

// Diagnose returns the RFC 8949 diagnostic notation of one encoded
// document, e.g. {_ "$type": "long", "value": 42}.
func Diagnose(data []byte) (string, error) {
	return fxcbor.Diagnose(data)
}
