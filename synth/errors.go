package synth

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is wrapped by every IndexError
var ErrIndexOutOfRange = errors.New("harmonic index out of range")

// IndexError reports an operation addressed to a partial that does not exist
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d not in [0,%d)", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

func newIndexError(op string, index, n int) *IndexError {
	return &IndexError{Op: op, Index: index, Len: n}
}
