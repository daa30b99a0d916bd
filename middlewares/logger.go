package middlewares

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/orderdesk/internal"
)

// RequestLoggerConfig configures the request logger middleware.
type RequestLoggerConfig struct {
	// Skip excludes requests whose path is listed (health checks, metrics scrapes).
	Skip []string
}

// RequestLoggerOption configures RequestLoggerConfig.
type RequestLoggerOption func(*RequestLoggerConfig)

// WithRequestLoggerSkip excludes the given paths from request logging.
func WithRequestLoggerSkip(paths ...string) RequestLoggerOption {
	return func(cfg *RequestLoggerConfig) {
		cfg.Skip = append(cfg.Skip, paths...)
	}
}

// RequestLogger returns middleware that logs one line per completed request.
// Server errors log at error level, client errors at warn, the rest at info.
func RequestLogger(opts ...RequestLoggerOption) internal.Middleware {
	cfg := &RequestLoggerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	skip := make(map[string]struct{}, len(cfg.Skip))
	for _, p := range cfg.Skip {
		skip[p] = struct{}{}
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			if _, ok := skip[c.Request().URL.Path]; ok {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			rw := c.ResponseWriter()
			status := rw.Status()
			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", status),
				slog.Int64("size", rw.Size()),
				slog.Duration("duration", time.Since(start)),
			}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
			}

			switch {
			case status >= 500 || err != nil:
				c.LogError("request completed", attrs...)
			case status >= 400:
				c.LogWarn("request completed", attrs...)
			default:
				c.LogInfo("request completed", attrs...)
			}
			return err
		}
	}
}
