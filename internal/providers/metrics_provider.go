package providers

import (
	"batlog/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObserveDbDuration(op string, duration time.Duration)
	IncRecordsCreated()
	IncUndoUsed()
}

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	dbDuration      *prometheus.HistogramVec
	recordsCreated  prometheus.Counter
	undoUsed        prometheus.Counter
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObserveDbDuration(op string, duration time.Duration) {
	m.dbDuration.WithLabelValues(op).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncRecordsCreated() {
	m.recordsCreated.Inc()
}

func (m *MetricsProvider) IncUndoUsed() {
	m.undoUsed.Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "batlog_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "batlog_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "batlog_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "batlog_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		dbDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "batlog_db_duration_seconds",
			Help:    "Duration of datastore operations in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),

		recordsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "batlog_at_bats_created_total",
			Help: "Total number of at-bat records created",
		}),

		undoUsed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "batlog_undo_used_total",
			Help: "Total number of successful delete undos",
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) ObserveDbDuration(_ string, _ time.Duration)      {}
func (n *noopMetrics) IncRecordsCreated()                               {}
func (n *noopMetrics) IncUndoUsed()                                     {}
