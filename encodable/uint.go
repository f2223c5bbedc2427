package encodable

import "github.com/stewi1014/ktext/encio"

// Uint8 is an Encodable for uint8s.
type Uint8 uint8

// Encode implements Encodable.
func (e Uint8) Encode(buff []byte) int { return encio.EncodeUint8(buff, uint8(e)) }

// Size implements Encodable.
func (e Uint8) Size() int { return encio.Uint64Len(uint64(e)) }

// Uint16 is an Encodable for uint16s.
type Uint16 uint16

// Encode implements Encodable.
func (e Uint16) Encode(buff []byte) int { return encio.EncodeUint16(buff, uint16(e)) }

// Size implements Encodable.
func (e Uint16) Size() int { return encio.Uint64Len(uint64(e)) }

// Uint32 is an Encodable for uint32s.
type Uint32 uint32

// Encode implements Encodable.
func (e Uint32) Encode(buff []byte) int { return encio.EncodeUint32(buff, uint32(e)) }

// Size implements Encodable.
func (e Uint32) Size() int { return encio.Uint64Len(uint64(e)) }

// Uint64 is an Encodable for uint64s.
type Uint64 uint64

// Encode implements Encodable.
func (e Uint64) Encode(buff []byte) int { return encio.EncodeUint64(buff, uint64(e)) }

// Size implements Encodable.
func (e Uint64) Size() int { return encio.Uint64Len(uint64(e)) }

// Uint is an Encodable for uints; sizes, lengths and counts.
type Uint uint

// Encode implements Encodable.
func (e Uint) Encode(buff []byte) int { return encio.EncodeUint(buff, uint(e)) }

// Size implements Encodable.
func (e Uint) Size() int { return encio.Uint64Len(uint64(e)) }
