package encodable

import "github.com/stewi1014/ktext/encio"

// Seq is an Encodable for an ordered list of Encodables, written back to back with nothing between them.
//
// Each element is given only what remains of the buffer after the elements before it,
// so once the buffer is full the remaining elements write nothing.
// Separators must be elements of their own, i.e. String(" ").
// A nil element is written as "nil".
type Seq []Encodable

// Encode implements Encodable.
func (e Seq) Encode(buff []byte) int {
	n := 0
	for _, enc := range e {
		if enc == nil {
			n += encio.Write(buff[n:], nilText)
			continue
		}
		n += enc.Encode(buff[n:])
	}
	return n
}

// Size implements Encodable.
func (e Seq) Size() int {
	size := 0
	for _, enc := range e {
		if enc == nil {
			size += len(nilText)
			continue
		}
		size += enc.Size()
	}
	return size
}
