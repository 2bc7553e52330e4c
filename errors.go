package bashnul

import (
	"errors"
	"fmt"
)

var (
	ErrUnescapedNul    = errors.New("encountered NUL, should have been escaped to 01 02")
	ErrInvalidEscape   = errors.New("invalid escape sequence, only 01 02 or 01 03 are valid")
	ErrTruncatedEscape = errors.New("stream ended with 01, expected at least 1 byte to follow")

	ErrRead        = errors.New("read failed")
	ErrWrite       = errors.New("write failed")
	ErrStuckStream = errors.New("stream is looping without progress")
	ErrSinkClosed  = errors.New("output went away")

	// ErrShortBuffer means an output buffer was sized below the maximum
	// expansion of its input. It is a programming error, not a data error.
	ErrShortBuffer = errors.New("internal error, write buffer size too small")
)

// SyntaxError describes malformed encoded input.
type SyntaxError struct {
	Offset int64 // offset of the offending byte in the encoded stream
	Byte   byte  // offending byte, meaningful for ErrInvalidEscape
	Err    error
}

func (e *SyntaxError) Error() string {
	switch {
	case errors.Is(e.Err, ErrInvalidEscape):
		return fmt.Sprintf("encountered unknown 01 %02x sequence at offset %d: %v", e.Byte, e.Offset, e.Err)
	case errors.Is(e.Err, ErrTruncatedEscape):
		return e.Err.Error()
	default:
		return fmt.Sprintf("%v (offset %d)", e.Err, e.Offset)
	}
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
