package providers_test

import (
	"net/http"
	"net/http/httptest"
	"ntd/internal/providers"
	"ntd/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware_RecordsRequest(t *testing.T) {
	metrics := testutil.NewMockMetrics()
	handler := providers.MetricsMiddleware(metrics, &testutil.MockLogger{}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/meals", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, 1, metrics.Requests)
}

func TestMetricsMiddleware_DefaultsToOK(t *testing.T) {
	metrics := testutil.NewMockMetrics()
	handler := providers.MetricsMiddleware(metrics, &testutil.MockLogger{}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok")) // implicit 200
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, metrics.Requests)
}

func TestMetricsMiddleware_AccessLogRoutedByMethod(t *testing.T) {
	logger := &testutil.MockLogger{}
	handler := providers.MetricsMiddleware(testutil.NewMockMetrics(), logger, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/meals/add", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/meals", nil))

	require.Len(t, logger.Logs, 2)
	assert.Equal(t, providers.TypePost, logger.Logs[0].Type)
	assert.Equal(t, providers.TypeGet, logger.Logs[1].Type)
	assert.Equal(t, http.StatusCreated, logger.Logs[0].Args[2])
}
