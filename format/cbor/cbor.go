// Package cbor implements binary format B: major-type/varint framing in the
// style of CBOR (RFC 8949). Arrays and objects are always written with
// indefinite lengths; both definite and indefinite containers are read.
package cbor

// Major types.
const (
	majorUnsigned byte = 0
	majorNegative byte = 1
	majorText     byte = 3
	majorArray    byte = 4
	majorMap      byte = 5
	majorSimple   byte = 7
)

// Initial bytes with fixed meaning.
const (
	breakCode  byte = 0xFF
	falseCode  byte = 0xF4
	trueCode   byte = 0xF5
	nullCode   byte = 0xF6
	undefCode  byte = 0xF7
	halfCode   byte = 0xF9
	singleCode byte = 0xFA
	doubleCode byte = 0xFB
)

// Additional information values.
const (
	infoUint8      = 24
	infoUint16     = 25
	infoUint32     = 26
	infoUint64     = 27
	infoIndefinite = 31
)
