package middlewares_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orderdesk/internal"
	"github.com/dmitrymomot/orderdesk/middlewares"
	"github.com/dmitrymomot/orderdesk/pkg/logger"
)

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		path      string
		handler   internal.HandlerFunc
		wantLevel string
		wantCode  float64
	}{
		{
			name:      "success logs info",
			path:      "/mail.php",
			handler:   func(c internal.Context) error { return c.JSON(http.StatusOK, map[string]bool{"success": true}) },
			wantLevel: "INFO",
			wantCode:  http.StatusOK,
		},
		{
			name:      "client error logs warn",
			path:      "/missing",
			handler:   func(c internal.Context) error { return c.NoContent(http.StatusNotFound) },
			wantLevel: "WARN",
			wantCode:  http.StatusNotFound,
		},
		{
			name:      "returned error logs error",
			path:      "/boom",
			handler:   func(c internal.Context) error { return errors.New("boom") },
			wantLevel: "ERROR",
			wantCode:  http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			ctx := newTestContextWithLogger(httptest.NewRecorder(), req, logger.New(logger.Config{Output: &buf}))

			_ = middlewares.RequestLogger()(tt.handler)(ctx)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			require.Equal(t, "request completed", entry["msg"])
			require.Equal(t, tt.wantLevel, entry["level"])
			require.Equal(t, http.MethodPost, entry["method"])
			require.Equal(t, tt.path, entry["path"])
			require.Equal(t, tt.wantCode, entry["status"])
		})
	}
}

func TestRequestLogger_Skip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	ctx := newTestContextWithLogger(httptest.NewRecorder(), req, logger.New(logger.Config{Output: &buf}))

	mw := middlewares.RequestLogger(middlewares.WithRequestLoggerSkip("/health/live", "/metrics"))
	require.NoError(t, mw(okHandler)(ctx))
	require.Empty(t, buf.String())
}
