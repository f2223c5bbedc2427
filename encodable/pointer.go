package encodable

import (
	"unsafe"

	"github.com/stewi1014/ktext/encio"
)

// PointerTo returns the address of p as a Pointer.
func PointerTo[T any](p *T) Pointer {
	return Pointer(uintptr(unsafe.Pointer(p)))
}

// Pointer is an Encodable for addresses.
// It is written in lowercase hex with a 0x prefix and no leading zeros; the nil address is "0x0".
type Pointer uintptr

// Encode implements Encodable.
func (e Pointer) Encode(buff []byte) int { return encio.EncodeHex(buff, uint64(e)) }

// Size implements Encodable.
func (e Pointer) Size() int { return encio.HexLen(uint64(e)) }
