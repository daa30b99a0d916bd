package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orderdesk/internal"
	"github.com/dmitrymomot/orderdesk/middlewares"
	"github.com/dmitrymomot/orderdesk/pkg/metrics"
)

type routesFunc func(r internal.Router)

func (f routesFunc) Routes(r internal.Router) { f(r) }

func TestMetrics_LabelsByRoutePattern(t *testing.T) {
	t.Parallel()

	m, err := metrics.New()
	require.NoError(t, err)

	app := internal.New(
		internal.WithMiddleware(middlewares.Metrics(m)),
		internal.WithHandlers(routesFunc(func(r internal.Router) {
			r.GET("/orders/{id}", func(c internal.Context) error { return c.NoContent(http.StatusAccepted) })
		})),
	)

	for _, target := range []string{"/orders/1", "/orders/2", "/nowhere"} {
		app.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()

	require.Contains(t, body, `orderdesk_http_requests_total{method="GET",route="/orders/{id}",status="202"} 2`)
	require.Contains(t, body, `status="404"`)
	require.NotContains(t, body, `route="/orders/1"`)
}

func TestMetrics_NilCollector(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, middlewares.Metrics(nil)(okHandler)(ctx))
}
