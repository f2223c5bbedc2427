package encodable_test

import (
	"testing"

	"github.com/maxatome/go-testdeep/td"

	"github.com/stewi1014/ktext/encodable"
)

const guard = 0xAA

// testEncode checks enc against want for every buffer capacity up to len(want)+2.
// For each capacity it checks the count and the bytes written, that nothing past the written bytes was touched,
// and that encoding again gives the same result.
// Truncated output must fill the buffer with a prefix of want, so multi-byte runes are tested separately.
func testEncode(t *testing.T, enc encodable.Encodable, want string) {
	t.Helper()

	td.Cmp(t, enc.Size(), len(want), "Size")

	for c := 0; c <= len(want)+2; c++ {
		buff := guarded(c + 4)
		n := enc.Encode(buff[:c])

		if n < 0 || n > c {
			t.Fatalf("capacity %v: returned %v", c, n)
		}
		if c >= len(want) {
			td.Cmp(t, string(buff[:n]), want, "capacity %v", c)
		} else {
			td.Cmp(t, n, c, "capacity %v", c)
			td.Cmp(t, string(buff[:n]), want[:n], "capacity %v", c)
		}
		checkGuard(t, buff[n:], c)

		again := guarded(c)
		td.Cmp(t, enc.Encode(again), n, "capacity %v, second encode", c)
		td.Cmp(t, again[:n], buff[:n], "capacity %v, second encode", c)
	}
}

func guarded(l int) []byte {
	buff := make([]byte, l)
	for i := range buff {
		buff[i] = guard
	}
	return buff
}

func checkGuard(t *testing.T, rest []byte, capacity int) {
	t.Helper()
	for i, b := range rest {
		if b != guard {
			t.Fatalf("capacity %v: byte %v past the written text was overwritten with %#x", capacity, i, b)
		}
	}
}

func TestEmptyBuffer(t *testing.T) {
	x := encodable.Uint64(7)
	testCases := []encodable.Encodable{
		encodable.Uint8(0),
		encodable.Uint16(1),
		encodable.Uint32(1 << 31),
		encodable.Uint64(1<<64 - 1),
		encodable.Uint(3),
		encodable.Int8(-1),
		encodable.Int16(-300),
		encodable.Int32(-1 << 31),
		encodable.Int64(-1),
		encodable.Int(42),
		encodable.Pointer(0),
		encodable.Bool(true),
		encodable.Bool(false),
		encodable.Rune('x'),
		encodable.String("hello"),
		encodable.CString("abc\x00"),
		encodable.Some(encodable.Uint8(5)),
		encodable.None[encodable.Uint8](),
		encodable.RefTo(&x),
		encodable.Ref[encodable.Uint64]{},
		&x,
		encodable.Seq{encodable.Uint8(1), encodable.String(" ")},
	}

	for _, tC := range testCases {
		td.Cmp(t, tC.Encode(nil), 0, "%T", tC)
		td.Cmp(t, tC.Encode([]byte{}), 0, "%T", tC)
	}
}
