// Package middlewares provides HTTP middleware for orderdesk applications.
//
// # Request ID
//
// RequestID keeps an upstream X-Request-ID or generates a ULID, stores it in
// the request context and echoes it in the response. RequestIDExtractor adds
// it to every log line:
//
//	log := logger.New(cfg, middlewares.RequestIDExtractor())
//	app := orderdesk.New(
//	    orderdesk.WithCustomLogger(log),
//	    orderdesk.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Request logging and metrics
//
// RequestLogger writes one line per request with method, path, status, size
// and duration. Metrics feeds a *metrics.Metrics with request counts and
// latency labelled by chi route pattern.
//
// # Recover and Timeout
//
// Recover converts panics into *PanicError; Timeout bounds handler runtime
// and returns *TimeoutError. Both are meant to be rendered by the app's
// ErrorHandler:
//
//	orderdesk.WithErrorHandler(func(c orderdesk.Context, err error) error {
//	    if pe, ok := middlewares.AsPanicError(err); ok {
//	        c.LogError("panic", "value", pe.Value)
//	    }
//	    return c.JSON(http.StatusOK, envelope)
//	})
//
// # CORS
//
// CORS answers preflight requests and sets the allow headers. With
// WithStaticHeaders it behaves like a plain form endpoint: the headers are
// sent on every response and every OPTIONS request is answered directly.
//
//	middlewares.CORS(
//	    middlewares.WithStaticHeaders(),
//	    middlewares.WithAllowMethods(http.MethodPost, http.MethodOptions),
//	    middlewares.WithAllowHeaders("Content-Type"),
//	    middlewares.WithPreflightStatus(http.StatusOK),
//	    middlewares.WithMaxAge(0),
//	)
package middlewares
