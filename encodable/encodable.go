// Package encodable provides text encoders for individual values.
// It aims to be small, total and allocation free, so it can compose diagnostic messages in places where there is no
// heap, no output stream and no formatting runtime.
//
// Encodable is the primary abstraction, implemented by a named type per kind of value.
// Values convert directly; Uint64(n), Bool(ok), String("id="), so encoding never needs a constructor or allocation.
package encodable

// Encodable is a value that can write its own text form into a fixed-size buffer.
//
// Implementations must hold to the following, for every value and every buffer, including empty ones:
// 1. Encode never writes at or past len(buff), and never panics.
// 1. Encode returns exactly the number of bytes it wrote, starting at buff[0].
// 1. Encode is deterministic; encoding the same value twice yields the same bytes.
// 1. Neither method allocates or blocks.
//
// A buffer that is too small is not an error. The text is truncated, and callers that care can compare the result
// of Encode with Size.
//
// All Encodables in this package have value receivers, so a pointer to one is itself an Encodable that forwards
// to the value it points to.
type Encodable interface {
	// Encode writes the text form of the value to buff, truncating at the end of buff.
	// It returns the number of bytes written.
	Encode(buff []byte) int

	// Size returns the length of the complete text form of the value;
	// the number of bytes Encode writes given a large enough buffer.
	Size() int
}
