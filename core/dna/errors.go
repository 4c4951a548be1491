package dna

import (
	"errors"
	"fmt"
)

// ErrMalformedPosition is wrapped by every *PositionError.
var ErrMalformedPosition = errors.New("malformed position")

// PositionError reports a location token that cannot be resolved.
type PositionError struct {
	Raw    string
	Reason string
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrMalformedPosition, e.Raw, e.Reason)
}

func (e *PositionError) Unwrap() error { return ErrMalformedPosition }

// InvalidBaseError is returned when a byte outside A/C/G/T has no complement.
// Offset is 0-based in the input to ReverseComplement.
type InvalidBaseError struct {
	Base   byte
	Offset int
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid base %q at offset %d", e.Base, e.Offset)
}
