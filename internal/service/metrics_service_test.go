package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotAveragesDurations(t *testing.T) {
	m := NewMetricsService()

	m.ObserveHTTPRequest(http.MethodGet, "/dashboard", http.StatusOK, 10*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodPost, "/attendance", http.StatusOK, 30*time.Millisecond)

	snap := m.Snapshot()
	assert.Equal(t, uint64(2), snap.RequestCount)
	assert.InDelta(t, 20, snap.AvgRequestTimeMs, 0.01)
}

func TestSnapshotEmpty(t *testing.T) {
	snap := NewMetricsService().Snapshot()
	assert.Equal(t, uint64(0), snap.RequestCount)
	assert.Equal(t, float64(0), snap.AvgRequestTimeMs)
}

func TestPrometheusHandlerExposesCounters(t *testing.T) {
	m := NewMetricsService()
	m.RecordStoreMutation("add_attendance")
	m.ObserveHTTPRequest(http.MethodGet, "/users", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "store_mutations_total")
	assert.Contains(t, body, "http_requests_total")
}

func TestNilMetricsServiceIsSafe(t *testing.T) {
	var m *MetricsService
	m.ObserveHTTPRequest(http.MethodGet, "/users", http.StatusOK, time.Millisecond)
	m.RecordStoreMutation("noop")
	assert.Equal(t, uint64(0), m.Snapshot().RequestCount)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
