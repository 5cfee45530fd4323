package controllers

import (
	"net/http"
	"net/http/httptest"
	"ntd/internal/cache"
	"ntd/internal/structures"
	"ntd/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	json "github.com/goccy/go-json"
)

func newHealthController(t *testing.T) *HealthController {
	t.Helper()
	fix := newApiFixture(t)

	conf := &structures.Config{}
	conf.Caches.ImageCapacity = 10
	images := cache.NewImageCache(conf, testutil.NewMockMetrics(), &testutil.MockLogger{})

	reset := fix.controller.reset
	return NewHealthController(fix.account, reset, images)
}

func TestHealth_ReturnsOK(t *testing.T) {
	hc := newHealthController(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Contains(t, resp, "uptime")
	assert.Contains(t, resp, "uptime_seconds")
	assert.Equal(t, "default", resp["active_scope"])
	assert.Equal(t, "never", resp["last_reset_date"])
	assert.Equal(t, float64(0), resp["cached_images"])
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	hc := newHealthController(t)

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"zero", 0, "0h0m0s"},
		{"one minute", 60 * time.Second, "0h1m0s"},
		{"one hour", time.Hour, "1h0m0s"},
		{"mixed", time.Hour + time.Minute + time.Second, "1h1m1s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatDuration(tt.duration))
		})
	}
}
