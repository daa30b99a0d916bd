package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orderdesk/pkg/metrics"
)

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestMetrics_RecordsRequestsAndSubmissions(t *testing.T) {
	t.Parallel()

	m, err := metrics.New()
	require.NoError(t, err)

	done := m.RequestStarted()
	done(http.MethodPost, "/mail.php", http.StatusOK)
	m.Submission("sent")
	m.Submission("sent")
	m.Submission("invalid_email")

	body := scrape(t, m)
	assert.Contains(t, body, `orderdesk_http_requests_total{method="POST",route="/mail.php",status="200"} 1`)
	assert.Contains(t, body, `orderdesk_submissions_total{outcome="sent"} 2`)
	assert.Contains(t, body, `orderdesk_submissions_total{outcome="invalid_email"} 1`)
	assert.Contains(t, body, "orderdesk_http_inflight_requests 0")
	assert.Contains(t, body, "orderdesk_http_request_duration_seconds_bucket")
}

func TestMetrics_UnmatchedRoute(t *testing.T) {
	t.Parallel()

	m, err := metrics.New()
	require.NoError(t, err)

	m.RequestStarted()(http.MethodGet, "", http.StatusNotFound)

	assert.Contains(t, scrape(t, m), `route="unmatched",status="404"`)
}

func TestMetrics_DuplicateRegistrationTolerated(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := metrics.NewWithRegistry(reg, reg)
	require.NoError(t, err)
	_, err = metrics.NewWithRegistry(reg, reg)
	require.NoError(t, err)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	t.Parallel()

	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.RequestStarted()(http.MethodGet, "/", http.StatusOK)
		m.Submission("sent")
	})
}
