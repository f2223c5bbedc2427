package encodable

import "github.com/stewi1014/ktext/encio"

// nilText is written in place of a missing referent.
const nilText = "nil"

// isNil reports whether v is a nil interface.
// Only possible when T is itself an interface type, such as Encodable.
func isNil[T Encodable](v T) bool {
	return Encodable(v) == nil
}

// RefTo returns a Ref to the value at p.
func RefTo[T Encodable](p *T) Ref[T] {
	return Ref[T]{P: p}
}

// Ref is an Encodable that forwards to the value it points to, adding nothing of its own.
//
// Pointers to the Encodables in this package already forward, since they all have value receivers.
// Ref is for pointers that may be nil; a nil Ref is written as "nil" rather than panicking.
type Ref[T Encodable] struct {
	P *T
}

// Encode implements Encodable.
func (e Ref[T]) Encode(buff []byte) int {
	if e.P == nil || isNil(*e.P) {
		return encio.Write(buff, nilText)
	}
	return (*e.P).Encode(buff)
}

// Size implements Encodable.
func (e Ref[T]) Size() int {
	if e.P == nil || isNil(*e.P) {
		return len(nilText)
	}
	return (*e.P).Size()
}
