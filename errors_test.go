package ndvec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrIndexOutOfRange(t *testing.T) {
	err := newIndexOutOfRange("swap", 5, 3)

	assert.EqualError(t, err, "swap: index 5 out of range [0, 3)")
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.False(t, errors.Is(err, ErrInvalidArgument))
}

func TestErrInvalidDimension(t *testing.T) {
	err := &ErrInvalidDimension{Dimension: -2, cause: ErrInvalidArgument}

	assert.EqualError(t, err, "invalid dimension: -2")
	assert.Equal(t, ErrInvalidArgument, errors.Unwrap(err))
}
