// Package metrics provides Prometheus metrics for the perftrack service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Sessions
	sessionsCreated prometheus.Counter
	sessionsEvicted prometheus.Counter
	sessionsClosed  prometheus.Counter
	activeSessions  prometheus.Gauge
	storedWeeks     prometheus.Gauge

	// Uploads
	uploads         prometheus.Counter
	uploadsRejected prometheus.Counter
	uploadProblems  prometheus.Counter
	uploadLatency   prometheus.Histogram
	rowsIngested    prometheus.Counter

	// Analytics
	queryLatency  *prometheus.HistogramVec
	absentResults *prometheus.CounterVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec

	// Repository
	repositoryUpdateLatency prometheus.Histogram
	repositoryQueryLatency  prometheus.Histogram

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "perftrack",
		subsystem:        "analytics",
		histogramBuckets: prometheus.DefBuckets,
		constLabels:      map[string]string{},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counter(name, help string) prometheus.Counter {
	return promauto.With(m.registry).NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	})
}

func (m *Manager) gauge(name, help string) prometheus.Gauge {
	return promauto.With(m.registry).NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	})
}

func (m *Manager) histogram(name, help string) prometheus.Histogram {
	return promauto.With(m.registry).NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	})
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.sessionsCreated = m.counter("sessions_created_total", "Total number of analysis sessions opened")
	m.sessionsEvicted = m.counter("sessions_evicted_total", "Sessions closed to stay under the session limit")
	m.sessionsClosed = m.counter("sessions_closed_total", "Sessions closed for any reason")
	m.activeSessions = m.gauge("active_sessions", "Currently open sessions")
	m.storedWeeks = m.gauge("stored_weeks", "Weekly snapshots held across all sessions")

	m.uploads = m.counter("uploads_total", "Weekly uploads accepted")
	m.uploadsRejected = m.counter("uploads_rejected_total", "Weekly uploads rejected before storing")
	m.uploadProblems = m.counter("upload_problems_total", "Cells or rows reported as problems in accepted uploads")
	m.uploadLatency = m.histogram("upload_latency_milliseconds", "Time to parse and store an upload in milliseconds")
	m.rowsIngested = m.counter("rows_ingested_total", "Athlete rows stored from accepted uploads")

	m.queryLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "query_latency_milliseconds",
			Help:        "Analytics query latency in milliseconds by operation",
			Buckets:     m.histogramBuckets,
			ConstLabels: m.constLabels,
		},
		[]string{"operation"},
	)
	m.absentResults = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "absent_results_total",
			Help:        "Analytics queries answered with no data, by operation",
			ConstLabels: m.constLabels,
		},
		[]string{"operation"},
	)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests by endpoint and method",
			ConstLabels: m.constLabels,
		},
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "http_request_duration_milliseconds",
			Help:        "HTTP request duration in milliseconds",
			Buckets:     m.histogramBuckets,
			ConstLabels: m.constLabels,
		},
		[]string{"endpoint", "method", "status_code"},
	)
	m.errorsByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "errors_by_endpoint_total",
			Help:        "Error responses by endpoint, method and error kind",
			ConstLabels: m.constLabels,
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.repositoryUpdateLatency = m.histogram("repository_update_latency_milliseconds", "Week snapshot write latency in milliseconds")
	m.repositoryQueryLatency = m.histogram("repository_query_latency_milliseconds", "Metric column read latency in milliseconds")

	m.systemMemoryUsage = m.gauge("system_memory_usage_bytes", "System memory usage in bytes")
	m.systemGoroutineCount = m.gauge("system_goroutine_count", "Number of goroutines")
}

// RecordSessionCreated increments the sessions created counter.
func RecordSessionCreated() {
	globalManager.sessionsCreated.Inc()
}

// RecordSessionEvicted increments the evicted sessions counter.
func RecordSessionEvicted() {
	globalManager.sessionsEvicted.Inc()
}

// RecordSessionClosed increments the closed sessions counter.
func RecordSessionClosed() {
	globalManager.sessionsClosed.Inc()
}

// UpdateActiveSessions sets the open session count.
func UpdateActiveSessions(count int) {
	globalManager.activeSessions.Set(float64(count))
}

// UpdateStoredWeeks sets the number of stored weekly snapshots.
func UpdateStoredWeeks(count int) {
	globalManager.storedWeeks.Set(float64(count))
}

// RecordUpload counts an accepted upload and its problems.
func RecordUpload(problems int) {
	globalManager.uploads.Inc()
	if problems > 0 {
		globalManager.uploadProblems.Add(float64(problems))
	}
}

// RecordUploadRejected counts an upload that failed validation.
func RecordUploadRejected() {
	globalManager.uploadsRejected.Inc()
}

// RecordUploadLatency records upload latency in milliseconds.
func RecordUploadLatency(latencyMs float64) {
	globalManager.uploadLatency.Observe(latencyMs)
}

// RecordRowsIngested counts athlete rows stored by an upload.
func RecordRowsIngested(rows int) {
	if rows > 0 {
		globalManager.rowsIngested.Add(float64(rows))
	}
}

// RecordQuery observes an analytics query. Queries that found no data are
// also counted as absent.
func RecordQuery(operation string, latencyMs float64, available bool) {
	globalManager.queryLatency.WithLabelValues(operation).Observe(latencyMs)
	if !available {
		globalManager.absentResults.WithLabelValues(operation).Inc()
	}
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordRepositoryUpdateLatency records repository update operation latency.
func RecordRepositoryUpdateLatency(latencyMs float64) {
	globalManager.repositoryUpdateLatency.Observe(latencyMs)
}

// RecordRepositoryQueryLatency records repository query operation latency.
func RecordRepositoryQueryLatency(latencyMs float64) {
	globalManager.repositoryQueryLatency.Observe(latencyMs)
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
