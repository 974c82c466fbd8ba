package ndvec

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSwap is called after each swap. err is nil if the swap was applied.
	RecordSwap(err error)

	// RecordMutate is called after each mutate.
	// ignored is true when the write fell outside the container.
	RecordMutate(ignored bool)

	// RecordGet is called after each read. found is false for out-of-range reads.
	RecordGet(found bool)

	// RecordRevert is called after each revert with the number of replayed records.
	RecordRevert(replayed int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSwap(error)  {}
func (NoopMetricsCollector) RecordMutate(bool) {}
func (NoopMetricsCollector) RecordGet(bool)    {}
func (NoopMetricsCollector) RecordRevert(int)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It may be shared between containers.
type BasicMetricsCollector struct {
	SwapCount      atomic.Int64
	SwapErrors     atomic.Int64
	MutateCount    atomic.Int64
	MutateIgnored  atomic.Int64
	GetCount       atomic.Int64
	GetMisses      atomic.Int64
	RevertCount    atomic.Int64
	RevertReplayed atomic.Int64
}

// RecordSwap implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSwap(err error) {
	b.SwapCount.Add(1)
	if err != nil {
		b.SwapErrors.Add(1)
	}
}

// RecordMutate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMutate(ignored bool) {
	b.MutateCount.Add(1)
	if ignored {
		b.MutateIgnored.Add(1)
	}
}

// RecordGet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGet(found bool) {
	b.GetCount.Add(1)
	if !found {
		b.GetMisses.Add(1)
	}
}

// RecordRevert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRevert(replayed int) {
	b.RevertCount.Add(1)
	b.RevertReplayed.Add(int64(replayed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SwapCount:      b.SwapCount.Load(),
		SwapErrors:     b.SwapErrors.Load(),
		MutateCount:    b.MutateCount.Load(),
		MutateIgnored:  b.MutateIgnored.Load(),
		GetCount:       b.GetCount.Load(),
		GetMisses:      b.GetMisses.Load(),
		RevertCount:    b.RevertCount.Load(),
		RevertReplayed: b.RevertReplayed.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SwapCount      int64
	SwapErrors     int64
	MutateCount    int64
	MutateIgnored  int64
	GetCount       int64
	GetMisses      int64
	RevertCount    int64
	RevertReplayed int64
}
