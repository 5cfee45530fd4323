package providers

import (
	"ntd/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHit(cache string)
	IncCacheMiss(cache string)
	IncImageEvictions()
	IncRemoteErrors(collaborator string)
	IncDailyResets()
}

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
	imageEvictions  prometheus.Counter
	remoteErrors    *prometheus.CounterVec
	dailyResets     prometheus.Counter
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHit(cache string) {
	m.cacheHits.WithLabelValues(cache).Inc()
}

func (m *MetricsProvider) IncCacheMiss(cache string) {
	m.cacheMisses.WithLabelValues(cache).Inc()
}

func (m *MetricsProvider) IncImageEvictions() {
	m.imageEvictions.Inc()
}

func (m *MetricsProvider) IncRemoteErrors(collaborator string) {
	m.remoteErrors.WithLabelValues(collaborator).Inc()
}

func (m *MetricsProvider) IncDailyResets() {
	m.dailyResets.Inc()
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
			Name: "ntd_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ntd_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ntd_cache_hits_total",
			Help: "Total number of cache hits per cache",
		}, []string{"cache"}),

		cacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ntd_cache_misses_total",
			Help: "Total number of cache misses per cache",
		}, []string{"cache"}),

		imageEvictions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ntd_image_cache_evictions_total",
			Help: "Total number of LRU evictions from the image cache",
		}),

		remoteErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ntd_remote_errors_total",
			Help: "Total number of remote collaborator failures",
		}, []string{"collaborator"}),

		dailyResets: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ntd_daily_resets_total",
			Help: "Total number of daily reset sequences performed",
		}),
	}
}

type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                  {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)  {}
func (n *noopMetrics) IncCacheHit(_ string)                              {}
func (n *noopMetrics) IncCacheMiss(_ string)                             {}
func (n *noopMetrics) IncImageEvictions()                                {}
func (n *noopMetrics) IncRemoteErrors(_ string)                          {}
func (n *noopMetrics) IncDailyResets()                                   {}
