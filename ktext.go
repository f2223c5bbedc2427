// Package ktext renders values as text into fixed-size byte buffers, without allocating.
//
// It is meant for composing diagnostic messages where there is no heap, no output stream and no formatting runtime,
// such as early boot code or interrupt handlers. The caller owns the buffer, usually a stack array,
// and hands buff[:n] to whatever sink it has once encoding is done.
//
// Nothing here returns an error or panics because of a short buffer. Text that does not fit is cut off, and the
// returned byte count is the only sign of it; compare it with Size() of the encodable if truncation matters.
//
//	var buff [64]byte
//	n := ktext.Compose(buff[:],
//		encodable.String("irq "), encodable.Uint8(irq),
//		encodable.String(" handler at "), encodable.Pointer(addr),
//	)
//	uart.Write(buff[:n])
//
// Compose boxes its arguments as interfaces. Where even that must be avoided, Writer has a method per kind of
// value and threads the same cursor without conversions.
//
// ktext/encodable provides the encoders for each kind of value.
//
// ktext/encio provides the byte level primitives they are built from, and error types.
package ktext

import (
	"github.com/stewi1014/ktext/encio"
	"github.com/stewi1014/ktext/encodable"
)

// Encode writes the text form of e to buff and returns the number of bytes written.
// A nil e is written as "nil".
func Encode(e encodable.Encodable, buff []byte) int {
	if e == nil {
		return encio.Write(buff, "nil")
	}
	return e.Encode(buff)
}

// Compose writes the text form of each value to buff in order, each starting where the last one stopped.
// It returns the total number of bytes written.
//
// Nothing is added between values; separators must be passed as values of their own.
// Once buff is full, the remaining values write nothing.
func Compose(buff []byte, values ...encodable.Encodable) int {
	return encodable.Seq(values).Encode(buff)
}
