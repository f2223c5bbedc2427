package encio

import (
	"errors"
	"runtime"
)

// Encoding itself never fails; short buffers truncate. Errors only appear where text or Go values are turned into
// Encodables, and all of them are wrapped in Error with one of the kinds below, so they can be checked with
//
//	if errors.Is(err, encio.ErrBadType) {
//		// handle unsupported value
//	}
var (
	// ErrMalformed is returned when a textual description of a value cannot be parsed.
	ErrMalformed = errors.New("malformed")

	// ErrBadType is returned when a value has no text encoding.
	ErrBadType = errors.New("bad type")
)

// NewError returns an Error wrapping err with message and caller.
// If caller is empty, it is automatically filled with the calling functions name.
func NewError(err error, message string, caller string) error {
	if caller == "" {
		caller = GetCaller(1)
	}

	return Error{
		Err:     err,
		Message: message,
		Caller:  caller,
	}
}

// Error is returned when a value cannot be turned into an Encodable.
type Error struct {
	Err     error
	Message string
	Caller  string
}

// Error implements error
func (e Error) Error() (str string) {
	if e.Caller != "" {
		str = e.Caller + ": "
	}

	str += e.Err.Error()

	if e.Message != "" {
		str += " (" + e.Message + ")"
	}

	return str
}

// Unwrap implements errors's Unwrap()
func (e Error) Unwrap() error {
	return e.Err
}

// GetCaller returns the name of the calling function, skipping skip functions.
// i.e. 0 writes the calling function, 1 the function calling that etc...
func GetCaller(skip int) string {
	pcs := make([]uintptr, 1)
	n := runtime.Callers(2+skip, pcs)
	if n != 1 {
		return "Unknown Function"
	}

	frames := runtime.CallersFrames(pcs)
	frame, _ := frames.Next()
	return frame.Function
}
