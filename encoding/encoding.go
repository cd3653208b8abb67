// Package encoding provides the generic APIs implemented by parquet encodings
// in its sub-packages.
package encoding

import (
	"errors"
	"fmt"

	"github.com/segmentio/vparquet/format"
)

// The Encoding interface is implemented by types representing parquet column
// encodings.
type Encoding interface {
	// Returns a human-readable name for the encoding.
	String() string

	// Returns the parquet code representing the encoding.
	Encoding() format.Encoding
}

var (
	// ErrNotSupported is an error returned when the underlying encoding does
	// not support the type of values being encoded or decoded.
	//
	// This error may be wrapped with type information, applications must use
	// errors.Is rather than equality comparisons to test the error values
	// returned by encoders and decoders.
	ErrNotSupported = errors.New("encoding not supported")

	// ErrInvalidArgument is an error returned one or more arguments passed to
	// the encoding functions are incorrect.
	//
	// As with ErrNotSupported, this error may be wrapped with specific
	// information about the problem and applications are expected to use
	// errors.Is for comparisons.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is an error returned when decoding would read past the end
	// of the input buffer.
	ErrOutOfRange = errors.New("out of range")
)

// Error constructs an error which wraps err and indicates that it originated
// from the given encoding.
func Error(e Encoding, err error) error {
	return fmt.Errorf("%s: %w", e, err)
}

// Errorf is like Error but constructs the error message from the given format
// and arguments.
func Errorf(e Encoding, msg string, args ...interface{}) error {
	return Error(e, fmt.Errorf(msg, args...))
}

// ErrDecodeNotSupported constructs an error indicating that values of the
// given type cannot be decoded by e.
func ErrDecodeNotSupported(e Encoding, op string, typ format.Type) error {
	return Errorf(e, "cannot %s from %s page: %w", op, typ, ErrNotSupported)
}

// ErrDecodeOutOfRange constructs an error indicating that decoding needed
// more bytes than were available in the input.
func ErrDecodeOutOfRange(e Encoding, typ format.Type, need, have int) error {
	return Errorf(e, "cannot decode %s: need %d bytes but only %d remain: %w", typ, need, have, ErrOutOfRange)
}

// ErrDecodeInvalidArgument constructs an error indicating that an argument
// passed to a decoding function was invalid.
func ErrDecodeInvalidArgument(e Encoding, name string, value int) error {
	return Errorf(e, "invalid %s: %d: %w", name, value, ErrInvalidArgument)
}
