package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orderdesk/internal"
	"github.com/dmitrymomot/orderdesk/middlewares"
)

func okHandler(c internal.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestCORS(t *testing.T) {
	t.Parallel()

	t.Run("default configuration allows all origins", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://example.com")
		rec := httptest.NewRecorder()

		err := middlewares.CORS()(okHandler)(newTestContext(rec, req))
		require.NoError(t, err)
		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("no CORS headers when Origin header is missing", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		err := middlewares.CORS()(okHandler)(newTestContext(rec, req))
		require.NoError(t, err)
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("specific origins list", func(t *testing.T) {
		t.Parallel()

		mw := middlewares.CORS(middlewares.WithAllowOrigins("http://allowed.com"))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://allowed.com")
		rec := httptest.NewRecorder()
		require.NoError(t, mw(okHandler)(newTestContext(rec, req)))
		require.Equal(t, "http://allowed.com", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "Origin", rec.Header().Get("Vary"))

		req = httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://evil.com")
		rec = httptest.NewRecorder()
		require.NoError(t, mw(okHandler)(newTestContext(rec, req)))
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("origin func overrides list", func(t *testing.T) {
		t.Parallel()

		mw := middlewares.CORS(
			middlewares.WithAllowOrigins("http://listed.com"),
			middlewares.WithAllowOriginFunc(func(o string) bool { return o == "http://func.com" }),
		)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://func.com")
		rec := httptest.NewRecorder()
		require.NoError(t, mw(okHandler)(newTestContext(rec, req)))
		require.Equal(t, "http://func.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("credentials echo origin", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://example.com")
		rec := httptest.NewRecorder()

		mw := middlewares.CORS(middlewares.WithAllowCredentials(), middlewares.WithExposeHeaders("X-Request-ID"))
		require.NoError(t, mw(okHandler)(newTestContext(rec, req)))
		require.Equal(t, "http://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
		require.Equal(t, "X-Request-ID", rec.Header().Get("Access-Control-Expose-Headers"))
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "http://example.com")
		rec := httptest.NewRecorder()

		called := false
		mw := middlewares.CORS(middlewares.WithMaxAge(time.Hour))
		err := mw(func(c internal.Context) error {
			called = true
			return nil
		})(newTestContext(rec, req))

		require.NoError(t, err)
		require.False(t, called)
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
		require.Equal(t, "3600", rec.Header().Get("Access-Control-Max-Age"))
	})
}

func TestCORS_StaticHeaders(t *testing.T) {
	t.Parallel()

	mw := middlewares.CORS(
		middlewares.WithStaticHeaders(),
		middlewares.WithAllowMethods(http.MethodPost, http.MethodOptions),
		middlewares.WithAllowHeaders("Content-Type"),
		middlewares.WithMaxAge(0),
		middlewares.WithPreflightStatus(http.StatusOK),
	)

	assertHeaders := func(t *testing.T, h http.Header) {
		t.Helper()
		require.Equal(t, "*", h.Get("Access-Control-Allow-Origin"))
		require.Equal(t, "POST, OPTIONS", h.Get("Access-Control-Allow-Methods"))
		require.Equal(t, "Content-Type", h.Get("Access-Control-Allow-Headers"))
		require.Empty(t, h.Get("Access-Control-Max-Age"))
	}

	t.Run("headers without Origin", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, mw(okHandler)(newTestContext(rec, req)))
		assertHeaders(t, rec.Header())
	})

	t.Run("bare OPTIONS answers 200 with empty body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		rec := httptest.NewRecorder()

		called := false
		err := mw(func(c internal.Context) error {
			called = true
			return nil
		})(newTestContext(rec, req))

		require.NoError(t, err)
		require.False(t, called)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, rec.Body.String())
		assertHeaders(t, rec.Header())
	})
}
