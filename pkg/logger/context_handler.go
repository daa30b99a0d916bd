package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// contextHandler adds request-scoped attributes pulled from the context on
// every call. Extracted attributes always land at the top level of the
// record, so request_id stays searchable when a component opens a group.
type contextHandler struct {
	root       slog.Handler
	next       slog.Handler
	scope      []func(slog.Handler) slog.Handler
	extractors []ContextExtractor
}

// NewContextHandler wraps next with the given extractors. Nil extractors are ignored.
func NewContextHandler(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	h := &contextHandler{root: next, next: next}
	for _, ex := range extractors {
		if ex != nil {
			h.extractors = append(h.extractors, ex)
		}
	}
	return h
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	var extracted []slog.Attr
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok && attr.Key != "" {
			extracted = append(extracted, attr)
		}
	}
	if len(extracted) == 0 {
		return h.next.Handle(ctx, rec)
	}
	if len(h.scope) == 0 {
		rec.AddAttrs(extracted...)
		return h.next.Handle(ctx, rec)
	}

	target := h.root.WithAttrs(extracted)
	for _, apply := range h.scope {
		target = apply(target)
	}
	return target.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return h.push(func(next slog.Handler) slog.Handler { return next.WithAttrs(attrs) })
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.push(func(next slog.Handler) slog.Handler { return next.WithGroup(name) })
}

func (h *contextHandler) push(apply func(slog.Handler) slog.Handler) *contextHandler {
	scope := make([]func(slog.Handler) slog.Handler, len(h.scope), len(h.scope)+1)
	copy(scope, h.scope)
	return &contextHandler{
		root:       h.root,
		next:       apply(h.next),
		scope:      append(scope, apply),
		extractors: h.extractors,
	}
}
