package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus collectors.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "reconcile").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for phase durations.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus collectors.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "reconcile",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors for the engine. A nil *Metrics
// is a valid no-op: every method guards against it, so disabled telemetry
// costs a single branch on the per-frame path.
type Metrics struct {
	cyclesTotal   prometheus.Counter
	patchesTotal  *prometheus.CounterVec
	duplicateKeys prometheus.Counter
	applyFailures prometheus.Counter
	diffDuration  prometheus.Histogram
	applyDuration prometheus.Histogram
}

// NewMetrics registers and returns the engine collectors.
//
// Metrics exposed:
//   - reconcile_cycles_total: counter of completed render cycles
//   - reconcile_patches_total: counter of patches by kind
//   - reconcile_duplicate_keys_total: counter of duplicate-key diagnostics
//   - reconcile_apply_failures_total: counter of failed apply calls
//   - reconcile_diff_duration_seconds: histogram of diff phase duration
//   - reconcile_apply_duration_seconds: histogram of apply phase duration
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		cyclesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "cycles_total",
			Help:        "Total number of completed render cycles",
			ConstLabels: config.ConstLabels,
		}),

		patchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "patches_total",
			Help:        "Total number of patches applied, by kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		duplicateKeys: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "duplicate_keys_total",
			Help:        "Total number of duplicate sibling key diagnostics",
			ConstLabels: config.ConstLabels,
		}),

		applyFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "apply_failures_total",
			Help:        "Total number of apply calls that failed",
			ConstLabels: config.ConstLabels,
		}),

		diffDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "diff_duration_seconds",
			Help:        "Diff phase duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		applyDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "apply_duration_seconds",
			Help:        "Apply phase duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
	}
}

// ObserveCycle records a completed cycle.
func (m *Metrics) ObserveCycle(r *Report) {
	if m == nil {
		return
	}
	m.cyclesTotal.Inc()
	for kind, count := range r.Counts {
		m.patchesTotal.WithLabelValues(kind.String()).Add(float64(count))
	}
	if r.DuplicateKeys > 0 {
		m.duplicateKeys.Add(float64(r.DuplicateKeys))
	}
	m.diffDuration.Observe(r.DiffDuration.Seconds())
	m.applyDuration.Observe(r.ApplyDuration.Seconds())
}

// ObserveApplyFailure records a failed apply call.
func (m *Metrics) ObserveApplyFailure() {
	if m == nil {
		return
	}
	m.applyFailures.Inc()
}
