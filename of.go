package ktext

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/stewi1014/ktext/encio"
	"github.com/stewi1014/ktext/encodable"
)

// Of returns the Encodable for v.
//
// Unlike the encoders themselves, Of may allocate, and is meant for code that has a heap;
// tests, tools, and building messages ahead of time.
//
// Supported are every integer kind, bool, string, uintptr and unsafe.Pointer (as addresses), []byte and byte arrays
// (as zero-terminated text), and existing Encodables. Named types are resolved by their kind, so a rune or int32
// is written as a number; use encodable.Rune for characters.
// Non-nil pointers are followed; a nil pointer is written as "nil".
//
// Other values return an encio.Error wrapping encio.ErrBadType.
func Of(v interface{}) (encodable.Encodable, error) {
	switch v := v.(type) {
	case nil:
		return encodable.String("nil"), nil
	case encodable.Encodable:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr && rv.IsNil() {
			return encodable.String("nil"), nil
		}
		return v, nil
	case unsafe.Pointer:
		return encodable.Pointer(uintptr(v)), nil
	case []byte:
		return encodable.CString(v), nil
	}

	return ofValue(reflect.ValueOf(v))
}

func ofValue(v reflect.Value) (encodable.Encodable, error) {
	switch v.Kind() {
	case reflect.Bool:
		return encodable.Bool(v.Bool()), nil
	case reflect.Int8:
		return encodable.Int8(v.Int()), nil
	case reflect.Int16:
		return encodable.Int16(v.Int()), nil
	case reflect.Int32:
		return encodable.Int32(v.Int()), nil
	case reflect.Int64:
		return encodable.Int64(v.Int()), nil
	case reflect.Int:
		return encodable.Int(v.Int()), nil
	case reflect.Uint8:
		return encodable.Uint8(v.Uint()), nil
	case reflect.Uint16:
		return encodable.Uint16(v.Uint()), nil
	case reflect.Uint32:
		return encodable.Uint32(v.Uint()), nil
	case reflect.Uint64:
		return encodable.Uint64(v.Uint()), nil
	case reflect.Uint:
		return encodable.Uint(v.Uint()), nil
	case reflect.Uintptr:
		return encodable.Pointer(v.Uint()), nil
	case reflect.UnsafePointer:
		return encodable.Pointer(v.Pointer()), nil
	case reflect.String:
		return encodable.String(v.String()), nil
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() != reflect.Uint8 {
			break
		}
		b := make([]byte, v.Len())
		for i := range b {
			b[i] = byte(v.Index(i).Uint())
		}
		return encodable.CString(b), nil
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return encodable.String("nil"), nil
		}
		if e, ok := v.Interface().(encodable.Encodable); ok {
			return e, nil
		}
		return ofValue(v.Elem())
	}

	return nil, encio.NewError(encio.ErrBadType, fmt.Sprintf("%v has no text encoding", v.Type()), "ktext.Of")
}

// ComposeValues is Compose for plain Go values, resolving each with Of.
// It returns the number of bytes written, and the first error from Of, in which case nothing is written.
func ComposeValues(buff []byte, values ...interface{}) (int, error) {
	seq := make(encodable.Seq, len(values))
	for i, v := range values {
		e, err := Of(v)
		if err != nil {
			return 0, err
		}
		seq[i] = e
	}
	return seq.Encode(buff), nil
}
