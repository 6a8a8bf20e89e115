package metrics

import "github.com/ParBLiSS/bliss/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. This is the default for partitioners constructed
// without WithMetrics, keeping the GetNext hot path free of instrumentation
// cost.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordConfigure discards the configure event.
func (n *NopMetrics) RecordConfigure(_ /* strategy */ string, _ /* partitions */ int, _ /* chunks */ uint64) {
	// No-op
}

// RecordChunk discards the chunk handout event.
func (n *NopMetrics) RecordChunk(_ /* strategy */ string, _ /* partitionID */ int, _ /* size */ float64) {
	// No-op
}

// RecordExhausted discards the exhaustion event.
func (n *NopMetrics) RecordExhausted(_ /* strategy */ string) {
	// No-op
}

// RecordReset discards the reset event.
func (n *NopMetrics) RecordReset(_ /* strategy */ string) {
	// No-op
}
