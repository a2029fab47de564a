package dict

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWidth indicates a code width outside [MinWidth, MaxWidth].
	ErrInvalidWidth = errors.New("dict: invalid code width")
	// ErrTruncatedHeader indicates a stream shorter than the fixed header.
	ErrTruncatedHeader = errors.New("dict: truncated header")
	// ErrTruncatedTable indicates a stream that ends inside the symbol table.
	ErrTruncatedTable = errors.New("dict: truncated symbol table")
	// ErrTruncatedCodes indicates a stream that ends inside the code section.
	ErrTruncatedCodes = errors.New("dict: truncated codes")
	// ErrTruncatedLiterals indicates a stream that ends inside the literal section.
	ErrTruncatedLiterals = errors.New("dict: truncated literals")
	// ErrInputTooLarge indicates an input whose length does not fit the 24-bit header field.
	ErrInputTooLarge = errors.New("dict: input too large")
)

// ErrorKind classifies decode failures.
type ErrorKind uint8

const (
	InvalidWidth ErrorKind = iota + 1
	TruncatedHeader
	TruncatedTable
	TruncatedCodes
	TruncatedLiterals
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidWidth:
		return "InvalidWidth"
	case TruncatedHeader:
		return "TruncatedHeader"
	case TruncatedTable:
		return "TruncatedTable"
	case TruncatedCodes:
		return "TruncatedCodes"
	case TruncatedLiterals:
		return "TruncatedLiterals"
	default:
		return "Unknown"
	}
}

// Err returns the sentinel error matching the kind.
func (k ErrorKind) Err() error {
	switch k {
	case InvalidWidth:
		return ErrInvalidWidth
	case TruncatedHeader:
		return ErrTruncatedHeader
	case TruncatedTable:
		return ErrTruncatedTable
	case TruncatedCodes:
		return ErrTruncatedCodes
	case TruncatedLiterals:
		return ErrTruncatedLiterals
	default:
		return nil
	}
}

// DecodeError describes why a stream could not be decoded.
//
// A DecodeError unwraps to the sentinel of its kind, so callers can test it with
// errors.Is(err, dict.ErrTruncatedCodes) or inspect it with errors.As.
type DecodeError struct {
	Kind   ErrorKind
	Offset int    // bit offset of the read cursor when decoding stopped
	Detail string // optional human-readable context
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("%v at bit %d", e.Kind.Err(), e.Offset)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Kind.Err()
}

func newDecodeError(kind ErrorKind, offset int, format string, args ...any) *DecodeError {
	return &DecodeError{
		Kind:   kind,
		Offset: offset,
		Detail: fmt.Sprintf(format, args...),
	}
}
