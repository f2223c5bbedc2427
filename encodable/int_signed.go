package encodable

import "github.com/stewi1014/ktext/encio"

// Int8 is an Encodable for int8s.
type Int8 int8

// Encode implements Encodable.
func (e Int8) Encode(buff []byte) int { return encio.EncodeInt8(buff, int8(e)) }

// Size implements Encodable.
func (e Int8) Size() int { return encio.Int64Len(int64(e)) }

// Int16 is an Encodable for int16s.
type Int16 int16

// Encode implements Encodable.
func (e Int16) Encode(buff []byte) int { return encio.EncodeInt16(buff, int16(e)) }

// Size implements Encodable.
func (e Int16) Size() int { return encio.Int64Len(int64(e)) }

// Int32 is an Encodable for int32s.
type Int32 int32

// Encode implements Encodable.
// The minimum int32 is written as -2147483648.
func (e Int32) Encode(buff []byte) int { return encio.EncodeInt32(buff, int32(e)) }

// Size implements Encodable.
func (e Int32) Size() int { return encio.Int64Len(int64(e)) }

// Int64 is an Encodable for int64s.
type Int64 int64

// Encode implements Encodable.
func (e Int64) Encode(buff []byte) int { return encio.EncodeInt64(buff, int64(e)) }

// Size implements Encodable.
func (e Int64) Size() int { return encio.Int64Len(int64(e)) }

// Int is an Encodable for ints.
type Int int

// Encode implements Encodable.
func (e Int) Encode(buff []byte) int { return encio.EncodeInt(buff, int(e)) }

// Size implements Encodable.
func (e Int) Size() int { return encio.Int64Len(int64(e)) }
