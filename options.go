package ndvec

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	revertMode       RevertMode
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		revertMode:       RevertReplay,
	}
}

// Option configures an NDVec at construction.
type Option func(*options)

// WithLogger sets the logger used to report swaps, reverts and ignored writes.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the collector notified after every operation.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithRevertMode sets the mode used by Revert.
//
// The default is RevertReplay, which keeps the swap log after replaying it.
// Use RevertClear to make Revert idempotent:
//
//	v, _ := ndvec.New(3, ndvec.WithRevertMode(ndvec.RevertClear))
func WithRevertMode(mode RevertMode) Option {
	return func(o *options) {
		o.revertMode = mode
	}
}
