// Package encio provides the bounded-buffer primitives that text encoders are built from, as well as error types.
//
// Every Encode and Write function here follows the same contract:
// it writes the text form of its argument into buff, never past len(buff),
// and returns the number of bytes it wrote. If buff is too small the text is silently cut short.
// None of them allocate, block or panic, so they can be called from any context.
package encio

// Write copies s into buff, truncating at the end of buff, and returns the number of bytes copied.
func Write(buff []byte, s string) int {
	return copy(buff, s)
}

// WriteBytes copies b into buff, truncating at the end of buff, and returns the number of bytes copied.
func WriteBytes(buff []byte, b []byte) int {
	return copy(buff, b)
}

// WriteByte writes a single byte to buff if there is room for it.
func WriteByte(buff []byte, b byte) int {
	if len(buff) == 0 {
		return 0
	}
	buff[0] = b
	return 1
}

// WriteCString copies b into buff up to, but not including, the first zero byte in b.
// A zero byte marks the end of the text and is never written.
func WriteCString(buff []byte, b []byte) int {
	return copy(buff, b[:CStringLen(b)])
}

// CStringLen returns the number of bytes in b before the first zero byte, or len(b) if there is none.
func CStringLen(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return len(b)
}
