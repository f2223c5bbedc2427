package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/stewi1014/ktext/encio"
	"github.com/stewi1014/ktext/encodable"
)

func malformed(tok string, reason string) error {
	return encio.NewError(encio.ErrMalformed, fmt.Sprintf("%q: %v", tok, reason), "parse")
}

// parseTokens parses each token in order into a single sequence.
func parseTokens(tokens []string) (encodable.Seq, error) {
	seq := make(encodable.Seq, 0, len(tokens))
	for _, tok := range tokens {
		e, err := parseToken(tok)
		if err != nil {
			return nil, err
		}
		seq = append(seq, e)
	}
	return seq, nil
}

// parseToken turns a kind:value token into an Encodable.
// some:<token> wraps another token, and none stands alone.
func parseToken(tok string) (encodable.Encodable, error) {
	if tok == "none" {
		return encodable.None[encodable.Encodable](), nil
	}

	kind, value, ok := strings.Cut(tok, ":")
	if !ok {
		return nil, malformed(tok, "want kind:value")
	}

	switch kind {
	case "u8", "u16", "u32", "u64", "usize":
		n, err := strconv.ParseUint(value, 0, uintBits(kind))
		if err != nil {
			return nil, malformed(tok, err.Error())
		}
		return unsigned(kind, n), nil

	case "i8", "i16", "i32", "i64", "isize":
		n, err := strconv.ParseInt(value, 0, uintBits("u"+kind[1:]))
		if err != nil {
			return nil, malformed(tok, err.Error())
		}
		return signed(kind, n), nil

	case "ptr":
		n, err := strconv.ParseUint(strings.TrimPrefix(value, "0x"), 16, 64)
		if err != nil {
			return nil, malformed(tok, err.Error())
		}
		return encodable.Pointer(n), nil

	case "bool":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, malformed(tok, err.Error())
		}
		return encodable.Bool(b), nil

	case "char":
		if utf8.RuneCountInString(value) != 1 {
			return nil, malformed(tok, "want exactly one character")
		}
		r, _ := utf8.DecodeRuneInString(value)
		return encodable.Rune(r), nil

	case "str":
		return encodable.String(value), nil

	case "cstr":
		s, err := strconv.Unquote(`"` + strings.ReplaceAll(value, `"`, `\"`) + `"`)
		if err != nil {
			return nil, malformed(tok, "bad escape sequence")
		}
		return encodable.CString(s), nil

	case "some":
		inner, err := parseToken(value)
		if err != nil {
			return nil, err
		}
		return encodable.Some(inner), nil
	}

	return nil, malformed(tok, "unknown kind "+strconv.Quote(kind))
}

func uintBits(kind string) int {
	switch kind {
	case "u8":
		return 8
	case "u16":
		return 16
	case "u32":
		return 32
	case "usize":
		return strconv.IntSize
	default:
		return 64
	}
}

func unsigned(kind string, n uint64) encodable.Encodable {
	switch kind {
	case "u8":
		return encodable.Uint8(n)
	case "u16":
		return encodable.Uint16(n)
	case "u32":
		return encodable.Uint32(n)
	case "usize":
		return encodable.Uint(n)
	default:
		return encodable.Uint64(n)
	}
}

func signed(kind string, n int64) encodable.Encodable {
	switch kind {
	case "i8":
		return encodable.Int8(n)
	case "i16":
		return encodable.Int16(n)
	case "i32":
		return encodable.Int32(n)
	case "isize":
		return encodable.Int(n)
	default:
		return encodable.Int64(n)
	}
}
