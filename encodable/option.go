package encodable

import "github.com/stewi1014/ktext/encio"

// Some returns a present Option holding v.
func Some[T Encodable](v T) Option[T] {
	return Option[T]{
		Value: v,
		Valid: true,
	}
}

// None returns an absent Option.
func None[T Encodable]() Option[T] {
	return Option[T]{}
}

// Option is an Encodable for a value that may be absent.
// A present value is written as Some(value), and an absent one as None.
//
// Each part is truncated on its own, so a short buffer can end with an unmatched "Some(".
type Option[T Encodable] struct {
	Value T
	Valid bool
}

// Encode implements Encodable.
func (e Option[T]) Encode(buff []byte) int {
	if !e.Valid {
		return encio.Write(buff, "None")
	}

	n := encio.Write(buff, "Some(")
	if isNil(e.Value) {
		n += encio.Write(buff[n:], nilText)
	} else {
		n += e.Value.Encode(buff[n:])
	}
	return n + encio.WriteByte(buff[n:], ')')
}

// Size implements Encodable.
func (e Option[T]) Size() int {
	if !e.Valid {
		return len("None")
	}
	if isNil(e.Value) {
		return len("Some()") + len(nilText)
	}
	return len("Some()") + e.Value.Size()
}
