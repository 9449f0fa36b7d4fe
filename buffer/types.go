package buffer

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every *RangeError.
var ErrOutOfRange = errors.New("offset out of range")

// RangeError reports an offset outside [0, Len] handed to a buffer or
// cursor operation. It always indicates a logic defect in the caller.
type RangeError struct {
	Op    string
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: index %d outside [0, %d]", e.Op, e.Index, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// Separators is a set of runes that delimit words.
type Separators []rune

// DefaultWordSeparators is used for word movement and cut-word when no set is
// configured.
var DefaultWordSeparators = Separators{' ', '/'}

func (s Separators) Contains(r rune) bool {
	for _, sep := range s {
		if sep == r {
			return true
		}
	}
	return false
}

func checkOffset(op string, off, n int) error {
	if off < 0 || off > n {
		return &RangeError{Op: op, Index: off, Len: n}
	}
	return nil
}

func checkRange(op string, start, end, n int) error {
	if err := checkOffset(op, start, n); err != nil {
		return err
	}
	if err := checkOffset(op, end, n); err != nil {
		return err
	}
	if end < start {
		return &RangeError{Op: op, Index: end, Len: n}
	}
	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
