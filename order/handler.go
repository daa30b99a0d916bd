package order

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/orderdesk"
	"github.com/dmitrymomot/orderdesk/middlewares"
)

// APIPath is the path the endpoint is served at besides Config.Path.
const APIPath = "/api/orders"

// Submitter is the behavior the HTTP handler needs from the service.
type Submitter interface {
	Submit(ctx context.Context, sub Submission) Result
	RejectMethod(ctx context.Context, method string) Result
}

// Handler serves the order endpoint.
type Handler struct {
	svc   Submitter
	paths []string
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithPaths sets the paths the endpoint is mounted at.
// Empty and duplicate paths are ignored.
func WithPaths(paths ...string) HandlerOption {
	return func(h *Handler) {
		h.paths = h.paths[:0]
		seen := make(map[string]struct{}, len(paths))
		for _, p := range paths {
			if _, dup := seen[p]; p == "" || dup {
				continue
			}
			seen[p] = struct{}{}
			h.paths = append(h.paths, p)
		}
	}
}

// NewHandler creates the HTTP handler. Without WithPaths it serves the
// default legacy path and APIPath.
func NewHandler(svc Submitter, opts ...HandlerOption) *Handler {
	h := &Handler{
		svc:   svc,
		paths: []string{DefaultConfig().Path, APIPath},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes implements orderdesk.Handler.
func (h *Handler) Routes(r orderdesk.Router) {
	cors := middlewares.CORS(
		middlewares.WithStaticHeaders(),
		middlewares.WithAllowOrigins("*"),
		middlewares.WithAllowMethods(http.MethodPost, http.MethodOptions),
		middlewares.WithAllowHeaders("Content-Type"),
		middlewares.WithPreflightStatus(http.StatusOK),
		middlewares.WithMaxAge(0),
	)
	for _, p := range h.paths {
		r.Any(p, h.submit, jsonContentType, cors)
	}
}

func (h *Handler) submit(c orderdesk.Context) error {
	switch c.Request().Method {
	case http.MethodPost:
	case http.MethodOptions:
		return c.NoContent(http.StatusOK)
	default:
		return c.JSON(http.StatusOK, h.svc.RejectMethod(c.Context(), c.Request().Method))
	}

	form, err := c.PostForm()
	if err != nil {
		c.LogWarn("order form not parsed", "error", err)
		return c.JSON(http.StatusOK, Result{Message: MsgUnknown})
	}

	return c.JSON(http.StatusOK, h.svc.Submit(c.Context(), ParseForm(form)))
}

// jsonContentType marks every endpoint response as JSON, preflight included.
func jsonContentType(next orderdesk.HandlerFunc) orderdesk.HandlerFunc {
	return func(c orderdesk.Context) error {
		c.SetHeader("Content-Type", "application/json")
		return next(c)
	}
}
