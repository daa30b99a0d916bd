// Package internal provides the core HTTP types for orderdesk.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/orderdesk" instead, which re-exports the public API.
//
// # Core Types
//
//   - App: owns the chi router, the middleware chain and the server lifecycle
//   - Context: request/response access plus JSON, logging and value helpers
//   - Router: the interface handlers use to declare routes
//   - Handler: implemented by types that declare routes on a router
//   - HandlerFunc: a route handler that returns an error
//   - Middleware: wraps a HandlerFunc
//   - ErrorHandler: renders errors returned from handlers
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed directly to any
// function that expects one:
//
//	func (h *Handler) submit(c orderdesk.Context) error {
//	    res := h.svc.Submit(c, sub)
//	    return c.JSON(http.StatusOK, res)
//	}
//
// # Forms
//
// Context.PostForm parses urlencoded and multipart bodies and returns the
// raw url.Values, so handlers can distinguish a missing field from an
// empty one.
//
// # Errors
//
// A handler that returns an error hands it to the ErrorHandler configured
// with WithErrorHandler. If the response has already been written the error
// is only logged. HTTPError carries a status code and a user-facing message.
//
// # Lifecycle
//
// App.Run listens, serves, and on SIGINT, SIGTERM or cancellation of the
// WithContext context drains in-flight requests and runs ShutdownHook
// functions within ShutdownTimeout.
package internal
