package providers

import (
	"ntd/internal/structures"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestNoopMetrics_WhenDisabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: false},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*noopMetrics)
	assert.True(t, ok, "should return noopMetrics when disabled")

	// Ensure no-op methods don't panic
	m.IncRequestsTotal("/meals", 200)
	m.ObserveRequestDuration("/meals", time.Millisecond)
	m.IncCacheHit("recommendation")
	m.IncCacheMiss("search")
	m.IncImageEvictions()
	m.IncRemoteErrors("recommendation")
	m.IncDailyResets()
}

func TestMetricsProvider_WhenEnabled(t *testing.T) {
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	defer func() {
		prometheus.DefaultRegisterer = prometheus.NewRegistry()
		prometheus.DefaultGatherer = prometheus.DefaultRegisterer.(prometheus.Gatherer)
	}()

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*MetricsProvider)
	assert.True(t, ok, "should return MetricsProvider when enabled")

	// These should not panic
	m.IncRequestsTotal("/meals", 200)
	m.IncRequestsTotal("/meals", 404)
	m.ObserveRequestDuration("/meals", 5*time.Millisecond)
	m.IncCacheHit("recommendation")
	m.IncCacheMiss("search")
	m.IncImageEvictions()
	m.IncRemoteErrors("food_search")
	m.IncDailyResets()
}

func TestHttpStatusBucket(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{102, "1xx"},
		{200, "2xx"},
		{201, "2xx"},
		{304, "3xx"},
		{400, "4xx"},
		{404, "4xx"},
		{500, "5xx"},
		{502, "5xx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, httpStatusBucket(tt.code))
	}
}
