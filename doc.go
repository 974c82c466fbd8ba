// Package ndvec provides an N-dimensional axis container with a reversible
// swap log.
//
// An NDVec holds a fixed number of axes, each AxisLength float32 values
// initialized to zero. Axes can be reordered with Swap; every swap is
// recorded, and Revert replays the record log in reverse to restore the
// ordering the container had at construction.
//
// # Quick Start
//
//	v, _ := ndvec.New(3)
//	v.Mutate(0, 0, 1.0)       // x
//	v.Mutate(1, 0, 2.0)       // y
//	v.Mutate(2, 0, 3.0)       // z
//
//	_ = v.Swap(2, 1)          // x, z, y
//	_ = v.Swap(0, 1)          // z, x, y
//
//	v.Revert()                // x, y, z
//
// # Index Handling
//
// Each operation treats invalid indices differently:
//
//   - Swap returns an error matching ErrOutOfRange and changes nothing.
//   - Get returns false.
//   - Mutate is a no-op. Ignored writes are reported at debug level to the
//     configured Logger and counted by the MetricsCollector.
//
// # Revert Modes
//
// By default (RevertReplay) the swap log is kept after Revert, so calling
// Revert twice re-applies the inverse sequence. That only returns to the
// pre-revert ordering when the recorded permutation is its own inverse.
// RevertClear drops the log after replaying it, making Revert idempotent:
//
//	v, _ := ndvec.New(3, ndvec.WithRevertMode(ndvec.RevertClear))
//
// RevertWith selects a mode for a single call.
//
// # Observability
//
//	mc := &ndvec.BasicMetricsCollector{}
//	v, _ := ndvec.New(8,
//	    ndvec.WithLogger(ndvec.NewTextLogger(slog.LevelDebug)),
//	    ndvec.WithMetricsCollector(mc),
//	)
//
// # Concurrency
//
// NDVec is not safe for concurrent use. Callers sharing a container across
// goroutines must guard the whole container with their own mutex.
package ndvec
