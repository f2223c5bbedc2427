package ktext

import (
	"io"

	"github.com/stewi1014/ktext/encio"
	"github.com/stewi1014/ktext/encodable"
)

// NewWriter returns a Writer that writes into buff.
// The Writer never grows buff; text that does not fit is dropped.
func NewWriter(buff []byte) Writer {
	return Writer{
		buff: buff,
	}
}

// Writer is a write cursor over a fixed-size buffer.
//
// Its methods append the text form of a value at the cursor and advance it by the number of bytes written.
// Typed methods take plain Go values, so composing with them involves no interface conversions.
// Methods return the Writer so calls can be chained.
//
//	var arr [80]byte
//	w := ktext.NewWriter(arr[:])
//	w.Str("pid ").Uint64(pid).Str(" exited with ").Int32(code)
//	console.Write(w.Bytes())
type Writer struct {
	buff      []byte
	off       int
	truncated bool
}

func (w *Writer) advance(n, size int) *Writer {
	w.off += n
	if n < size {
		w.truncated = true
	}
	return w
}

func (w *Writer) rest() []byte {
	return w.buff[w.off:]
}

// Encode appends the text form of e.
func (w *Writer) Encode(e encodable.Encodable) *Writer {
	if e == nil {
		return w.Str("nil")
	}
	return w.advance(e.Encode(w.rest()), e.Size())
}

// Uint64 appends n in decimal.
func (w *Writer) Uint64(n uint64) *Writer {
	return w.advance(encio.EncodeUint64(w.rest(), n), encio.Uint64Len(n))
}

// Uint appends n in decimal.
func (w *Writer) Uint(n uint) *Writer {
	return w.Uint64(uint64(n))
}

// Int64 appends n in decimal.
func (w *Writer) Int64(n int64) *Writer {
	return w.advance(encio.EncodeInt64(w.rest(), n), encio.Int64Len(n))
}

// Int32 appends n in decimal.
func (w *Writer) Int32(n int32) *Writer {
	return w.Int64(int64(n))
}

// Int appends n in decimal.
func (w *Writer) Int(n int) *Writer {
	return w.Int64(int64(n))
}

// Pointer appends addr in hex with a 0x prefix.
func (w *Writer) Pointer(addr uintptr) *Writer {
	return w.advance(encio.EncodeHex(w.rest(), uint64(addr)), encio.HexLen(uint64(addr)))
}

// Bool appends "true" or "false".
func (w *Writer) Bool(b bool) *Writer {
	e := encodable.Bool(b)
	return w.advance(e.Encode(w.rest()), e.Size())
}

// Rune appends the UTF-8 encoding of r, or nothing if it does not fit whole.
func (w *Writer) Rune(r rune) *Writer {
	return w.advance(encio.EncodeRune(w.rest(), r), encio.RuneLen(r))
}

// Str appends s as is.
func (w *Writer) Str(s string) *Writer {
	return w.advance(encio.Write(w.rest(), s), len(s))
}

// CString appends b up to its first zero byte.
func (w *Writer) CString(b []byte) *Writer {
	return w.advance(encio.WriteCString(w.rest(), b), encio.CStringLen(b))
}

// Write implements io.Writer.
// It copies as much of p as fits, returning io.ErrShortWrite if that is not all of it.
func (w *Writer) Write(p []byte) (int, error) {
	n := encio.WriteBytes(w.rest(), p)
	w.advance(n, len(p))
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// WriteTo implements io.WriterTo, handing the written text to a sink.
// The Writer is left as it is; call Reset to reuse the buffer.
func (w *Writer) WriteTo(sink io.Writer) (int64, error) {
	n, err := sink.Write(w.Bytes())
	return int64(n), err
}

// Bytes returns the text written so far. It aliases the Writer's buffer.
func (w *Writer) Bytes() []byte {
	return w.buff[:w.off]
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.off
}

// Available returns the number of bytes left in the buffer.
func (w *Writer) Available() int {
	return len(w.buff) - w.off
}

// Truncated reports whether any text has been cut short since the last Reset.
func (w *Writer) Truncated() bool {
	return w.truncated
}

// Reset moves the cursor back to the start of the buffer.
func (w *Writer) Reset() {
	w.off = 0
	w.truncated = false
}
