package middlewares_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orderdesk/internal"
	"github.com/dmitrymomot/orderdesk/middlewares"
	"github.com/dmitrymomot/orderdesk/pkg/id"
	"github.com/dmitrymomot/orderdesk/pkg/logger"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates a ULID when not present", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, req)

		var captured string
		err := middlewares.RequestID()(func(c internal.Context) error {
			captured = middlewares.GetRequestID(c)
			return nil
		})(ctx)

		require.NoError(t, err)
		require.Len(t, captured, 26)
		_, err = id.ULIDTime(captured)
		require.NoError(t, err)
		require.Equal(t, captured, rec.Header().Get("X-Request-ID"))
	})

	t.Run("uses existing request ID from header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "existing-request-id-123")
		rec := httptest.NewRecorder()

		err := middlewares.RequestID()(func(c internal.Context) error { return nil })(newTestContext(rec, req))
		require.NoError(t, err)
		require.Equal(t, "existing-request-id-123", rec.Header().Get("X-Request-ID"))
	})

	t.Run("custom headers respect priority order", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Trace-ID", "trace-456")
		req.Header.Set("X-Custom-ID", "custom-123")
		rec := httptest.NewRecorder()

		mw := middlewares.RequestID(middlewares.WithRequestIDHeaders("X-Custom-ID", "X-Trace-ID"))
		require.NoError(t, mw(func(c internal.Context) error { return nil })(newTestContext(rec, req)))
		require.Equal(t, "custom-123", rec.Header().Get("X-Request-ID"))
	})

	t.Run("custom generator and response header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		mw := middlewares.RequestID(
			middlewares.WithRequestIDGenerator(func() string { return "fixed" }),
			middlewares.WithRequestIDResponseHeader("X-Trace"),
		)
		require.NoError(t, mw(func(c internal.Context) error { return nil })(newTestContext(rec, req)))
		require.Equal(t, "fixed", rec.Header().Get("X-Trace"))
		require.Empty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("GetRequestID is empty without middleware", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		require.Empty(t, middlewares.GetRequestID(ctx))
	})
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.Config{Output: &buf}, middlewares.RequestIDExtractor())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "rid-1")
	ctx := newTestContextWithLogger(httptest.NewRecorder(), req, log)

	err := middlewares.RequestID()(func(c internal.Context) error {
		c.LogInfo("inside")
		return nil
	})(ctx)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "rid-1", entry["request_id"])

	_, ok := middlewares.RequestIDExtractor()(t.Context())
	require.False(t, ok)
}
