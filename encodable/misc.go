package encodable

import "github.com/stewi1014/ktext/encio"

// String is an Encodable for strings.
// The bytes are copied as they are; nothing is escaped or validated.
type String string

// Encode implements Encodable.
func (e String) Encode(buff []byte) int { return encio.Write(buff, string(e)) }

// Size implements Encodable.
func (e String) Size() int { return len(e) }

// Bool is an Encodable for bools.
type Bool bool

// Encode implements Encodable.
func (e Bool) Encode(buff []byte) int {
	if e {
		return encio.Write(buff, "true")
	}
	return encio.Write(buff, "false")
}

// Size implements Encodable.
func (e Bool) Size() int {
	if e {
		return 4
	}
	return 5
}

// Rune is an Encodable for single characters, written as UTF-8.
//
// A rune is written whole or not at all; if the buffer cannot hold its complete encoding, Encode writes nothing.
// Invalid runes are written as U+FFFD.
type Rune rune

// Encode implements Encodable.
func (e Rune) Encode(buff []byte) int { return encio.EncodeRune(buff, rune(e)) }

// Size implements Encodable.
func (e Rune) Size() int { return encio.RuneLen(rune(e)) }

// CString is an Encodable for fixed-size, zero-terminated byte arrays.
// Use it with a slice of the array; CString(name[:]).
//
// Bytes are copied up to the first zero byte, which ends the text and is not itself written.
type CString []byte

// Encode implements Encodable.
func (e CString) Encode(buff []byte) int { return encio.WriteCString(buff, e) }

// Size implements Encodable.
func (e CString) Size() int { return encio.CStringLen(e) }
