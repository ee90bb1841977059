// Package metrics provides Prometheus metrics for the ladder ranking engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the ranking engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Streaming Engine Metrics - one pass, bounded buffer
	playersStreamed  prometheus.Counter
	playersDiscarded prometheus.Counter
	heapReplacements prometheus.Counter
	cutoffsRecorded  prometheus.Counter
	onlineDuration   prometheus.Histogram

	// Batch Engine Metrics - labelled by strategy (heap / quickselect)
	batchDuration *prometheus.HistogramVec

	// Shared Result Metrics
	topSetSize prometheus.Gauge
	rosterSize prometheus.Gauge

	// Error Metrics - contract violations by component
	rankErrors *prometheus.CounterVec

	// Simulation Metrics
	playersGenerated   prometheus.Counter
	generationDuration prometheus.Histogram

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "ladder",
		subsystem:        "ranking",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	m.playersStreamed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_streamed_total",
		Help:      "Total number of players read from streaming sources",
	})

	m.playersDiscarded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_discarded_total",
		Help:      "Total number of streamed players below the cutoff and dropped",
	})

	m.heapReplacements = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "heap_replacements_total",
		Help:      "Total number of replace-min operations on the streaming buffer",
	})

	m.cutoffsRecorded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cutoffs_recorded_total",
		Help:      "Total number of leaderboard cutoff checkpoints recorded",
	})

	m.onlineDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "online_rank_duration_milliseconds",
		Help:      "Histogram of streaming ranking duration in milliseconds, excluding source fetches",
		Buckets:   m.histogramBuckets,
	})

	m.batchDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batch_rank_duration_milliseconds",
		Help:      "Histogram of batch ranking duration in milliseconds by strategy",
		Buckets:   m.histogramBuckets,
	}, []string{"strategy"})

	m.topSetSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "top_set_size",
		Help:      "Size of the most recently computed top set",
	})

	m.rosterSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_size",
		Help:      "Size of the most recently ranked roster",
	})

	m.rankErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rank_errors_total",
		Help:      "Total number of ranking contract violations by component and reason",
	}, []string{"component", "reason"})

	m.playersGenerated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_generated_total",
		Help:      "Total number of simulated players generated",
	})

	m.generationDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "generation_duration_milliseconds",
		Help:      "Histogram of roster generation duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})
}

// RecordPlayerStreamed increments the streamed players counter.
func RecordPlayerStreamed() {
	globalManager.playersStreamed.Inc()
}

// RecordPlayerDiscarded increments the discarded players counter.
func RecordPlayerDiscarded() {
	globalManager.playersDiscarded.Inc()
}

// RecordHeapReplacement increments the replace-min counter.
func RecordHeapReplacement() {
	globalManager.heapReplacements.Inc()
}

// RecordCutoff increments the recorded cutoffs counter.
func RecordCutoff() {
	globalManager.cutoffsRecorded.Inc()
}

// RecordOnlineRankDuration records a streaming ranking duration in milliseconds.
func RecordOnlineRankDuration(durationMs float64) {
	globalManager.onlineDuration.Observe(durationMs)
}

// RecordBatchRankDuration records a batch ranking duration in milliseconds.
func RecordBatchRankDuration(strategy string, durationMs float64) {
	globalManager.batchDuration.WithLabelValues(strategy).Observe(durationMs)
}

// UpdateTopSetSize sets the size of the latest top set.
func UpdateTopSetSize(size int) {
	globalManager.topSetSize.Set(float64(size))
}

// UpdateRosterSize sets the size of the latest ranked roster.
func UpdateRosterSize(size int) {
	globalManager.rosterSize.Set(float64(size))
}

// RecordRankError records a ranking contract violation.
func RecordRankError(component, reason string) {
	globalManager.rankErrors.WithLabelValues(component, reason).Inc()
}

// RecordPlayersGenerated adds to the generated players counter.
func RecordPlayersGenerated(count int) {
	globalManager.playersGenerated.Add(float64(count))
}

// RecordGenerationDuration records a roster generation duration in milliseconds.
func RecordGenerationDuration(durationMs float64) {
	globalManager.generationDuration.Observe(durationMs)
}

// UpdateSystemMemoryUsage sets the system memory usage gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine count gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
