package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orderdesk/pkg/health"
)

func ok(context.Context) error { return nil }

func failing(context.Context) error { return errors.New("connection refused") }

func TestLivenessHandler(t *testing.T) {
	t.Parallel()

	t.Run("plain text", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		health.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		health.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/live?format=json", nil))

		var resp health.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, health.StatusHealthy, resp.Status)
	})

	t.Run("head has headers but no body", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		health.LivenessHandler()(rec, httptest.NewRequest(http.MethodHead, "/health/live", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Empty(t, rec.Body.String())
	})

	t.Run("accept with parameters", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
		req.Header.Set("Accept", "text/html, application/json; q=0.9")
		rec := httptest.NewRecorder()
		health.LivenessHandler()(rec, req)

		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
	})
}

func TestReadinessHandler(t *testing.T) {
	t.Parallel()

	t.Run("all checks pass", func(t *testing.T) {
		t.Parallel()

		h := health.ReadinessHandler(health.Checks{"mail": ok, "capture": ok})
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("failing check in plain text", func(t *testing.T) {
		t.Parallel()

		h := health.ReadinessHandler(health.Checks{"mail": failing})
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "Service Unavailable", rec.Body.String())
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	})

	t.Run("one failing check", func(t *testing.T) {
		t.Parallel()

		h := health.ReadinessHandler(health.Checks{"mail": failing, "capture": ok})
		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()
		h(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp health.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, health.StatusUnhealthy, resp.Status)
		assert.Equal(t, health.StatusUnhealthy, resp.Checks["mail"].Status)
		assert.Equal(t, "connection refused", resp.Checks["mail"].Error)
		assert.Equal(t, health.StatusHealthy, resp.Checks["capture"].Status)
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()

		slow := func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}
		h := health.ReadinessHandler(health.Checks{"slow": slow}, health.WithTimeout(10*time.Millisecond))
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/health/ready?format=json", nil))

		var resp health.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, resp.Checks["slow"].Error, health.ErrCheckTimeout.Error())
	})
}

func TestRun(t *testing.T) {
	t.Parallel()

	require.NoError(t, health.Run(context.Background(), nil))
	require.NoError(t, health.Run(context.Background(), health.Checks{"mail": ok}))

	err := health.Run(context.Background(), health.Checks{"mail": failing})
	require.ErrorIs(t, err, health.ErrCheckFailed)
	assert.Contains(t, err.Error(), "mail: connection refused")
}
