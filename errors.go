package prophy

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated is returned when the input ends before a declared scalar,
	// fixed-array extent, count-prefixed payload, or greedy element is
	// complete. Every decode shortfall unwraps to it.
	ErrTruncated = errors.New("prophy: truncated input")

	// ErrTrailing is returned when a message decodes cleanly but does not
	// consume the entire input buffer.
	ErrTrailing = errors.New("prophy: trailing bytes after message")
)

// DecodeError reports where a decode stopped and what the failing read
// wanted. It exists for diagnosis only; callers that just need pass/fail
// check the error against nil.
type DecodeError struct {
	Offset int // byte offset of the failing read
	Need   int // bytes the read required
	Have   int // bytes that were left
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("prophy: truncated input at offset %d: need %d bytes, have %d", e.Offset, e.Need, e.Have)
}

func (e *DecodeError) Unwrap() error { return ErrTruncated }

// TrailingError reports a decode that succeeded without consuming the whole
// buffer.
type TrailingError struct {
	Offset int // where the message ended
	Len    int // total buffer length
}

func (e *TrailingError) Error() string {
	return fmt.Sprintf("prophy: message ends at offset %d, buffer has %d bytes", e.Offset, e.Len)
}

func (e *TrailingError) Unwrap() error { return ErrTrailing }
