package ktext_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/maxatome/go-testdeep/td"

	"github.com/stewi1014/ktext"
	"github.com/stewi1014/ktext/encodable"
)

func TestCompose(t *testing.T) {
	buff := make([]byte, 20)
	n := ktext.Compose(buff,
		encodable.Uint64(1),
		encodable.String(" "),
		encodable.Bool(true),
	)
	td.Cmp(t, n, 6)
	td.Cmp(t, string(buff[:n]), "1 true")
}

func TestComposeTruncation(t *testing.T) {
	values := []encodable.Encodable{
		encodable.String("irq "),
		encodable.Uint8(14),
		encodable.String(" at "),
		encodable.Pointer(0xc0de),
	}
	full := "irq 14 at 0xc0de"

	for c := 0; c <= len(full)+2; c++ {
		buff := make([]byte, c+2)
		buff[c], buff[c+1] = '#', '#'

		n := ktext.Compose(buff[:c], values...)

		want := full
		if c < len(want) {
			want = want[:c]
		}
		if diff := cmp.Diff(want, string(buff[:n])); diff != "" {
			t.Errorf("capacity %v: mismatch (-want +got):\n%s", c, diff)
		}
		if diff := cmp.Diff("##", string(buff[c:])); diff != "" {
			t.Errorf("capacity %v: wrote past the buffer (-want +got):\n%s", c, diff)
		}
	}
}

func TestComposeEmpty(t *testing.T) {
	td.Cmp(t, ktext.Compose(nil, encodable.Uint8(1), encodable.Bool(false)), 0)
	td.Cmp(t, ktext.Compose(make([]byte, 4)), 0)
}

func TestEncode(t *testing.T) {
	testCases := []struct {
		desc string
		enc  encodable.Encodable
		want string
	}{
		{desc: "unsigned zero", enc: encodable.Uint32(0), want: "0"},
		{desc: "minus one", enc: encodable.Int32(-1), want: "-1"},
		{desc: "min int32", enc: encodable.Int32(-1 << 31), want: "-2147483648"},
		{desc: "null address", enc: encodable.Pointer(0), want: "0x0"},
		{desc: "address", enc: encodable.Pointer(255), want: "0xff"},
		{desc: "some", enc: encodable.Some(encodable.Uint8(5)), want: "Some(5)"},
		{desc: "none", enc: encodable.None[encodable.Uint8](), want: "None"},
		{desc: "true", enc: encodable.Bool(true), want: "true"},
		{desc: "false", enc: encodable.Bool(false), want: "false"},
		{desc: "nil", enc: nil, want: "nil"},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			buff := make([]byte, 32)
			n := ktext.Encode(tC.enc, buff)
			td.Cmp(t, string(buff[:n]), tC.want)

			again := make([]byte, 64)
			td.Cmp(t, ktext.Encode(tC.enc, again), n)
			td.Cmp(t, again[:n], buff[:n])
		})
	}
}

func TestEncodeTruncated(t *testing.T) {
	buff := make([]byte, 3)
	n := ktext.Encode(encodable.Uint64(12345), buff)
	td.Cmp(t, n, 3)
	td.Cmp(t, string(buff), "123")
}
