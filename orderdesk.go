package orderdesk

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/dmitrymomot/orderdesk/internal"
	"github.com/dmitrymomot/orderdesk/pkg/health"
	"github.com/dmitrymomot/orderdesk/pkg/logger"
)

// Type aliases - public API
type (
	// App owns the router, the middleware chain and the server lifecycle.
	App = internal.App

	// Router is the interface handlers use to declare routes.
	Router = internal.Router

	// Context provides request/response access and helper methods.
	Context = internal.Context

	// Handler declares routes on a router.
	Handler = internal.Handler

	// HandlerFunc is the signature for route handlers.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc to add cross-cutting concerns.
	Middleware = internal.Middleware

	// ErrorHandler handles errors returned from handlers.
	ErrorHandler = internal.ErrorHandler

	// Option configures the application.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// HealthOption configures health check endpoints.
	HealthOption = internal.HealthOption

	// ResponseWriter tracks status and size of a response.
	ResponseWriter = internal.ResponseWriter

	// HTTPError carries a status code and a user-facing message.
	HTTPError = internal.HTTPError

	// ContextExtractor extracts a slog attribute from context.
	// Used with WithLogger to add request-scoped values to logs.
	ContextExtractor = logger.ContextExtractor
)

// New creates a new application with the given options.
//
// Example:
//
//	app := orderdesk.New(
//	    orderdesk.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    orderdesk.WithHandlers(order.NewHandler(svc, order.WithPaths("/mail.php", order.APIPath))),
//	)
//
//	err := app.Run(":8080", orderdesk.Logger(log))
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// App options

func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

func WithHandlers(h ...Handler) Option {
	return internal.WithHandlers(h...)
}

// WithMount attaches a plain http.Handler, such as the metrics exporter.
func WithMount(pattern string, h http.Handler) Option {
	return internal.WithMount(pattern, h)
}

func WithErrorHandler(h ErrorHandler) Option {
	return internal.WithErrorHandler(h)
}

func WithNotFoundHandler(h HandlerFunc) Option {
	return internal.WithNotFoundHandler(h)
}

func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return internal.WithMethodNotAllowedHandler(h)
}

// WithHealthChecks enables /health/live and /health/ready.
func WithHealthChecks(opts ...HealthOption) Option {
	return internal.WithHealthChecks(opts...)
}

func WithLogger(component string, extractors ...ContextExtractor) Option {
	return internal.WithLogger(component, extractors...)
}

func WithCustomLogger(l *slog.Logger) Option {
	return internal.WithCustomLogger(l)
}

// Health options

func WithLivenessPath(path string) HealthOption {
	return internal.WithLivenessPath(path)
}

func WithReadinessPath(path string) HealthOption {
	return internal.WithReadinessPath(path)
}

func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return internal.WithReadinessCheck(name, fn)
}

// Run options

func Address(addr string) RunOption {
	return internal.Address(addr)
}

func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// ShutdownHook registers a cleanup function to run during shutdown,
// for example flushing buffered Sentry events.
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}

func OnListen(fn func(net.Addr)) RunOption {
	return internal.OnListen(fn)
}

// Helpers

// ContextValue returns the value stored under key by c.Set, typed as T.
func ContextValue[T any](c Context, key any) T {
	return internal.ContextValue[T](c, key)
}

// HTTP errors

func NewHTTPError(code int, message string) *HTTPError {
	return internal.NewHTTPError(code, message)
}

func AsHTTPError(err error) *HTTPError {
	return internal.AsHTTPError(err)
}
