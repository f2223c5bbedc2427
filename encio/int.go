package encio

import "math/bits"

// Maximum decimal lengths of each unsigned width, not counting a sign.
// They size the scratch space used while extracting digits.
const (
	MaxUint8Len  = 3  // 255
	MaxUint16Len = 5  // 65535
	MaxUint32Len = 10 // 4294967295
	MaxUint64Len = 20 // 18446744073709551615

	// MaxHexLen is the longest text EncodeHex can produce; "0x" and 16 nibbles.
	MaxHexLen = 2 + 16
)

const hexDigits = "0123456789abcdef"

// encodeDigits writes the decimal digits of n to buff, most significant first.
// scratch must be able to hold every digit of n; digits are extracted into it from the back.
func encodeDigits(buff []byte, n uint64, scratch []byte) int {
	i := len(scratch)
	for {
		i--
		scratch[i] = '0' + byte(n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	return copy(buff, scratch[i:])
}

// EncodeUint8 writes n in decimal to buff.
func EncodeUint8(buff []byte, n uint8) int {
	var scratch [MaxUint8Len]byte
	return encodeDigits(buff, uint64(n), scratch[:])
}

// EncodeUint16 writes n in decimal to buff.
func EncodeUint16(buff []byte, n uint16) int {
	var scratch [MaxUint16Len]byte
	return encodeDigits(buff, uint64(n), scratch[:])
}

// EncodeUint32 writes n in decimal to buff.
func EncodeUint32(buff []byte, n uint32) int {
	return EncodeUint64(buff, uint64(n))
}

// EncodeUint64 writes n in decimal to buff.
func EncodeUint64(buff []byte, n uint64) int {
	var scratch [MaxUint64Len]byte
	return encodeDigits(buff, n, scratch[:])
}

// EncodeUint writes n in decimal to buff.
func EncodeUint(buff []byte, n uint) int {
	return EncodeUint64(buff, uint64(n))
}

// EncodeInt8 writes n in decimal to buff.
func EncodeInt8(buff []byte, n int8) int {
	return EncodeInt64(buff, int64(n))
}

// EncodeInt16 writes n in decimal to buff.
func EncodeInt16(buff []byte, n int16) int {
	return EncodeInt64(buff, int64(n))
}

// EncodeInt32 writes n in decimal to buff.
func EncodeInt32(buff []byte, n int32) int {
	return EncodeInt64(buff, int64(n))
}

// EncodeInt writes n in decimal to buff.
func EncodeInt(buff []byte, n int) int {
	return EncodeInt64(buff, int64(n))
}

// EncodeInt64 writes n in decimal to buff.
// Negative numbers are preceded by '-', which is subject to truncation like any other byte.
// The minimum int64 is rendered exactly.
func EncodeInt64(buff []byte, n int64) int {
	if n >= 0 {
		return EncodeUint64(buff, uint64(n))
	}
	if len(buff) == 0 {
		return 0
	}
	buff[0] = '-'
	return 1 + EncodeUint64(buff[1:], magnitude(n))
}

// magnitude returns |n| for negative n without overflowing on the minimum int64.
func magnitude(n int64) uint64 {
	return uint64(-(n + 1)) + 1
}

// EncodeHex writes "0x" followed by n in lowercase hexadecimal to buff.
// Leading zero nibbles are dropped, but at least one nibble is always written; 0 is "0x0".
func EncodeHex(buff []byte, n uint64) int {
	pos := Write(buff, "0x")

	var scratch [16]byte
	i := len(scratch)
	for {
		i--
		scratch[i] = hexDigits[n&0xf]
		n >>= 4
		if n == 0 {
			break
		}
	}
	return pos + copy(buff[pos:], scratch[i:])
}

// Uint64Len returns the number of bytes EncodeUint64 writes for n given enough space.
func Uint64Len(n uint64) int {
	l := 1
	for n >= 10 {
		n /= 10
		l++
	}
	return l
}

// Int64Len returns the number of bytes EncodeInt64 writes for n given enough space.
func Int64Len(n int64) int {
	if n < 0 {
		return 1 + Uint64Len(magnitude(n))
	}
	return Uint64Len(uint64(n))
}

// HexLen returns the number of bytes EncodeHex writes for n given enough space.
func HexLen(n uint64) int {
	if n == 0 {
		return 3
	}
	return 2 + (bits.Len64(n)+3)/4
}
