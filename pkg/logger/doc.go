// Package logger provides structured logging with context extraction and Sentry integration.
//
// It extends log/slog with request-scoped attribute injection and optional
// Sentry error reporting.
//
// # Basic Usage
//
//	log := logger.New(logger.Config{Level: "info", Format: "json"},
//		middlewares.RequestIDExtractor(),
//	)
//	log.InfoContext(ctx, "order submitted", slog.String("company", "Acme"))
//	// {"level":"INFO","msg":"order submitted","company":"Acme","request_id":"01J..."}
//
// # Sentry Integration
//
// NewWithSentry fans records out to both the base handler and Sentry. Errors
// create Sentry issues, warnings are stored as logs. With an empty DSN the
// logger falls back to the base handler only:
//
//	log, flush := logger.NewWithSentry(cfg, extractors...)
//	defer flush(context.Background())
//
// # Context Extractors
//
// A ContextExtractor pulls one attribute from the context on every log call:
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// NewContextHandler wraps any slog.Handler to apply extractors; extracted
// attributes stay at the top level even inside WithGroup. Finally,
// NewNope returns a logger that discards everything (tests, defaults).
package logger
