package middlewares

import (
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/orderdesk/internal"
	"github.com/dmitrymomot/orderdesk/pkg/metrics"
)

// Metrics returns middleware that records request count, latency and
// in-flight requests. Requests are labelled by the chi route pattern so
// path parameters do not explode label cardinality.
func Metrics(m *metrics.Metrics) internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			done := m.RequestStarted()
			err := next(c)

			route := ""
			if rctx := chi.RouteContext(c.Request().Context()); rctx != nil {
				route = rctx.RoutePattern()
			}
			done(c.Request().Method, route, c.ResponseWriter().Status())
			return err
		}
	}
}
