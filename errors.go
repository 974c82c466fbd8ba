package ndvec

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by every index error returned by ndvec.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidArgument is matched by errors caused by invalid constructor arguments.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ErrIndexOutOfRange indicates an axis position outside [0, Len).
//
// errors.Is(err, ErrOutOfRange) reports true for it.
type ErrIndexOutOfRange struct {
	Op    string
	Index int
	Len   int
	cause error
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d)", e.Op, e.Index, e.Len)
}

func (e *ErrIndexOutOfRange) Unwrap() error { return e.cause }

// ErrInvalidDimension indicates a negative axis count.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidDimension struct {
	Dimension int
	cause     error
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func (e *ErrInvalidDimension) Unwrap() error { return e.cause }

func newIndexOutOfRange(op string, index, length int) error {
	return &ErrIndexOutOfRange{Op: op, Index: index, Len: length, cause: ErrOutOfRange}
}
