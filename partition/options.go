package partition

import (
	"github.com/ParBLiSS/bliss/internal/logging"
	"github.com/ParBLiSS/bliss/internal/metrics"
	"github.com/ParBLiSS/bliss/types"
)

// Option configures a partitioner with optional dependencies.
type Option func(*options)

// options holds optional partitioner configuration.
type options struct {
	logger  types.Logger
	metrics types.MetricsCollector
}

func defaultOptions() options {
	return options{
		logger:  logging.NewSlogDefault(),
		metrics: metrics.NewNop(),
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with slog and zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for the strategy constructors
//
// Example:
//
//	logger := logging.NewSlog(slog.Default())
//	p := partition.NewDemandDriven[uint64](partition.WithLogger(logger))
func WithLogger(logger types.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for the strategy constructors
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "myapp")
//	p := partition.NewBlock[uint64](partition.WithMetrics(collector))
func WithMetrics(collector types.MetricsCollector) Option {
	return func(o *options) {
		if collector != nil {
			o.metrics = collector
		}
	}
}
