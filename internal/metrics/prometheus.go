package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ParBLiSS/bliss/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Counters and histograms are labeled by strategy name only; partition ids
// are deliberately not a label, to keep cardinality in check when callers
// configure thousands of partitions.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	configures      *prometheus.CounterVec
	partitionsGauge *prometheus.GaugeVec
	chunksPlanned   *prometheus.GaugeVec
	chunksTotal     *prometheus.CounterVec
	chunkSize       *prometheus.HistogramVec
	exhaustedTotal  *prometheus.CounterVec
	resetsTotal     *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "bliss" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "bliss"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.configures = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "partitioner",
			Name:      "configures_total",
			Help:      "Total successful Configure calls by strategy.",
		}, []string{"strategy"})

		p.partitionsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "partitioner",
			Name:      "partitions",
			Help:      "Configured partition count by strategy.",
		}, []string{"strategy"})

		p.chunksPlanned = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "partitioner",
			Name:      "chunks_planned",
			Help:      "Precomputed chunk count of the current configuration by strategy.",
		}, []string{"strategy"})

		p.chunksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "partitioner",
			Name:      "chunks_total",
			Help:      "Total chunks handed out by strategy.",
		}, []string{"strategy"})

		p.chunkSize = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "partitioner",
			Name:      "chunk_size",
			Help:      "Observed chunk sizes (including ghost region) by strategy.",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 12),
		}, []string{"strategy"})

		p.exhaustedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "partitioner",
			Name:      "exhausted_total",
			Help:      "Total traversal exhaustion events by strategy.",
		}, []string{"strategy"})

		p.resetsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "partitioner",
			Name:      "resets_total",
			Help:      "Total Reset calls by strategy.",
		}, []string{"strategy"})

		for _, c := range []prometheus.Collector{
			p.configures, p.partitionsGauge, p.chunksPlanned,
			p.chunksTotal, p.chunkSize, p.exhaustedTotal, p.resetsTotal,
		} {
			p.reg.MustRegister(c)
		}
	})
}

// RecordConfigure records a successful Configure call.
func (p *PrometheusCollector) RecordConfigure(strategy string, partitions int, chunks uint64) {
	p.ensureRegistered()
	p.configures.WithLabelValues(strategy).Inc()
	p.partitionsGauge.WithLabelValues(strategy).Set(float64(partitions))
	p.chunksPlanned.WithLabelValues(strategy).Set(float64(chunks))
}

// RecordChunk records a non-sentinel chunk handed out by GetNext.
func (p *PrometheusCollector) RecordChunk(strategy string, _ /* partitionID */ int, size float64) {
	p.ensureRegistered()
	p.chunksTotal.WithLabelValues(strategy).Inc()
	p.chunkSize.WithLabelValues(strategy).Observe(size)
}

// RecordExhausted records a traversal exhaustion event.
func (p *PrometheusCollector) RecordExhausted(strategy string) {
	p.ensureRegistered()
	p.exhaustedTotal.WithLabelValues(strategy).Inc()
}

// RecordReset records a Reset call.
func (p *PrometheusCollector) RecordReset(strategy string) {
	p.ensureRegistered()
	p.resetsTotal.WithLabelValues(strategy).Inc()
}
