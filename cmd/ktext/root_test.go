package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stewi1014/ktext/encio"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)

	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}

	rootCmd := NewRootCmd()
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"compose", []string{"-s", "20", "u64:1", "str: ", "bool:true"}, "1 true"},
		{"truncated", []string{"-s", "3", "u64:12345"}, "123"},
		{"empty buffer", []string{"-s", "0", "u8:1", "bool:false"}, ""},
		{"optional", []string{"some:u8:5", "str: ", "none"}, "Some(5) None"},
		{"pointers", []string{"ptr:0", "str: ", "ptr:0xff", "str: ", "ptr:FF"}, "0x0 0xff 0xff"},
		{"signed", []string{"i32:-1", "str:,", "i32:-2147483648", "str:,", "i8:-0x80"}, "-1,-2147483648,-128"},
		{"cstr", []string{`cstr:abc\x00def`, "char:é"}, "abcé"},
		{"no tokens", nil, ""},
		{"newline", []string{"-n", "str:hi"}, "hi\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestRootCmdCount(t *testing.T) {
	stdout, stderr, err := run(t, "-c", "-s", "4", "str:hello")
	require.NoError(t, err)
	assert.Equal(t, "hell", stdout)
	assert.Contains(t, stderr, "4/5 bytes, truncated")
	assert.Contains(t, stderr, "Text truncated")

	stdout, stderr, err = run(t, "--count", "str:hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", stdout)
	assert.Contains(t, stderr, "5/5 bytes, complete")
}

func TestRootCmdErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown kind", []string{"f64:1.5"}},
		{"missing kind", []string{"12"}},
		{"out of range", []string{"u8:256"}},
		{"negative unsigned", []string{"u32:-1"}},
		{"bad bool", []string{"bool:yes"}},
		{"two chars", []string{"char:ab"}},
		{"bad inner", []string{"some:x"}},
		{"negative size", []string{"--size=-1", "u8:1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, encio.ErrMalformed), "got %v", err)
			assert.Empty(t, stdout)
		})
	}
}
