package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveRequest(t *testing.T) {
	t.Parallel()

	m := NewMetrics("cricket")
	m.ObserveRequest(http.MethodGet, "GET /api/leagues", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "GET /api/leagues", http.StatusOK, 30*time.Millisecond)
	m.ObserveRequest(http.MethodPost, "POST /api/leagues", http.StatusConflict, time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodGet, "GET /api/leagues", "200")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodPost, "POST /api/leagues", "409")))
}

func TestMetrics_HandlerExposesRegistry(t *testing.T) {
	t.Parallel()

	m := NewMetrics("cricket")
	m.ObserveRequest(http.MethodGet, "GET /healthz", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "cricket_http_requests_total"))
	require.True(t, strings.Contains(rec.Body.String(), "go_goroutines"))
}
