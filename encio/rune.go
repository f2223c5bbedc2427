package encio

import "unicode/utf8"

// EncodeRune writes the UTF-8 encoding of r to buff.
// If the whole encoding does not fit, nothing is written; a partial multi-byte sequence is never produced.
// Invalid runes are written as utf8.RuneError.
func EncodeRune(buff []byte, r rune) int {
	l := RuneLen(r)
	if len(buff) < l {
		return 0
	}
	return utf8.EncodeRune(buff, r)
}

// RuneLen returns the number of bytes EncodeRune writes for r given enough space.
func RuneLen(r rune) int {
	if l := utf8.RuneLen(r); l > 0 {
		return l
	}
	return utf8.RuneLen(utf8.RuneError)
}
