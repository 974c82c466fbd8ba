package ndvec

import (
	"context"
	"fmt"

	"github.com/hupe1980/ndvec/internal/swaplog"
)

// AxisLength is the number of values held by every axis.
const AxisLength = 60

// RevertMode controls what Revert does with the swap log after replaying it.
type RevertMode int

const (
	// RevertReplay keeps the swap log. A second Revert re-applies the inverse
	// sequence, which only restores the previous ordering when the recorded
	// permutation is its own inverse.
	RevertReplay RevertMode = iota

	// RevertClear clears the swap log after replaying it, so an immediate
	// second Revert is a no-op.
	RevertClear
)

func (m RevertMode) String() string {
	switch m {
	case RevertReplay:
		return "replay"
	case RevertClear:
		return "clear"
	default:
		return fmt.Sprintf("RevertMode(%d)", int(m))
	}
}

// SwapRecord is a logged exchange of the axes at positions A and B.
type SwapRecord = swaplog.Record

// NDVec is a fixed set of axes, each AxisLength float32 values, whose order
// can be permuted by swaps and restored by Revert.
//
// NDVec is not safe for concurrent use.
type NDVec struct {
	axes  [][]float32
	order []int
	log   *swaplog.Log

	logger     *Logger
	metrics    MetricsCollector
	revertMode RevertMode
}

// New creates a container with dim zeroed axes and an empty swap log.
func New(dim int, optFns ...Option) (*NDVec, error) {
	if dim < 0 {
		return nil, &ErrInvalidDimension{Dimension: dim, cause: ErrInvalidArgument}
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	// One backing array; axes are reordered by swapping slice headers.
	data := make([]float32, dim*AxisLength)
	axes := make([][]float32, dim)
	order := make([]int, dim)

	for i := range dim {
		axes[i] = data[i*AxisLength : (i+1)*AxisLength : (i+1)*AxisLength]
		order[i] = i
	}

	return &NDVec{
		axes:       axes,
		order:      order,
		log:        swaplog.New(),
		logger:     opts.logger.WithDimension(dim),
		metrics:    opts.metricsCollector,
		revertMode: opts.revertMode,
	}, nil
}

// Dim returns the number of axes.
func (v *NDVec) Dim() int {
	return len(v.axes)
}

// AxisLen returns the number of values per axis.
func (v *NDVec) AxisLen() int {
	return AxisLength
}

// Swap exchanges the axes at positions a and b and records the exchange.
// Invalid positions leave the container untouched and return an error
// matching ErrOutOfRange.
func (v *NDVec) Swap(a, b int) error {
	err := v.swap(a, b)
	v.logger.LogSwap(context.Background(), a, b, err)
	v.metrics.RecordSwap(err)

	return err
}

func (v *NDVec) swap(a, b int) error {
	if !v.validAxis(a) {
		return newIndexOutOfRange("swap", a, len(v.axes))
	}
	if !v.validAxis(b) {
		return newIndexOutOfRange("swap", b, len(v.axes))
	}

	v.exchange(a, b)
	v.log.Append(a, b)

	return nil
}

// Mutate sets the value at position within axis.
// Out-of-range indices are ignored.
func (v *NDVec) Mutate(axis, position int, value float32) {
	if !v.validAxis(axis) || !validPosition(position) {
		v.logger.LogIgnoredMutate(context.Background(), axis, position)
		v.metrics.RecordMutate(true)
		return
	}

	v.axes[axis][position] = value
	v.metrics.RecordMutate(false)
}

// Get returns the value at position within axis.
// The boolean is false if either index is out of range.
func (v *NDVec) Get(axis, position int) (float32, bool) {
	if !v.validAxis(axis) || !validPosition(position) {
		v.metrics.RecordGet(false)
		return 0, false
	}

	v.metrics.RecordGet(true)

	return v.axes[axis][position], true
}

// Axis returns a copy of the axis currently at the given position.
func (v *NDVec) Axis(axis int) ([]float32, bool) {
	if !v.validAxis(axis) {
		return nil, false
	}

	out := make([]float32, AxisLength)
	copy(out, v.axes[axis])

	return out, true
}

// Order returns, for every position, the index the axis at that position had
// when the container was created.
func (v *NDVec) Order() []int {
	out := make([]int, len(v.order))
	copy(out, v.order)

	return out
}

// History returns the swap log in chronological order.
func (v *NDVec) History() []SwapRecord {
	return v.log.Records()
}

// HistoryLen returns the number of recorded swaps.
func (v *NDVec) HistoryLen() int {
	return v.log.Len()
}

// Revert undoes every recorded swap, newest first, using the configured
// RevertMode. It returns the number of records replayed.
func (v *NDVec) Revert() int {
	return v.RevertWith(v.revertMode)
}

// RevertWith is like Revert but uses mode instead of the configured one.
func (v *NDVec) RevertWith(mode RevertMode) int {
	// Recorded positions were validated on append and the axis count is fixed,
	// so the callback cannot fail.
	replayed, _ := v.log.ReplayReverse(func(rec swaplog.Record) error {
		inv := rec.Inverse()
		v.exchange(inv.A, inv.B)
		return nil
	})

	if mode == RevertClear {
		v.log.Reset()
	}

	v.logger.LogRevert(context.Background(), mode, replayed)
	v.metrics.RecordRevert(replayed)

	return replayed
}

func (v *NDVec) String() string {
	return fmt.Sprintf("NDVec{dim: %d, order: %v, swaps: %d}", len(v.axes), v.order, v.log.Len())
}

func (v *NDVec) exchange(a, b int) {
	v.axes[a], v.axes[b] = v.axes[b], v.axes[a]
	v.order[a], v.order[b] = v.order[b], v.order[a]
}

func (v *NDVec) validAxis(axis int) bool {
	return axis >= 0 && axis < len(v.axes)
}

func validPosition(position int) bool {
	return position >= 0 && position < AxisLength
}
