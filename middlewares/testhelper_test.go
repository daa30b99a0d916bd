package middlewares_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrymomot/orderdesk/internal"
	"github.com/dmitrymomot/orderdesk/pkg/logger"
)

// testContext is a minimal internal.Context backed by a recorder.
type testContext struct {
	rw      *internal.ResponseWriter
	request *http.Request
	logger  *slog.Logger
}

func newTestContext(w http.ResponseWriter, r *http.Request) *testContext {
	return &testContext{
		rw:      internal.NewResponseWriter(w),
		request: r,
		logger:  logger.NewNope(),
	}
}

func newTestContextWithLogger(w http.ResponseWriter, r *http.Request, l *slog.Logger) *testContext {
	c := newTestContext(w, r)
	c.logger = l
	return c
}

func (c *testContext) Request() *http.Request        { return c.request }
func (c *testContext) Response() http.ResponseWriter { return c.rw }
func (c *testContext) Context() context.Context      { return c.request.Context() }
func (c *testContext) Deadline() (time.Time, bool)   { return c.request.Context().Deadline() }
func (c *testContext) Done() <-chan struct{}         { return c.request.Context().Done() }
func (c *testContext) Err() error                    { return c.request.Context().Err() }
func (c *testContext) Value(key any) any             { return c.request.Context().Value(key) }
func (c *testContext) Param(string) string           { return "" }
func (c *testContext) Query(name string) string      { return c.request.URL.Query().Get(name) }
func (c *testContext) Form(name string) string       { return c.request.FormValue(name) }
func (c *testContext) Header(name string) string     { return c.request.Header.Get(name) }
func (c *testContext) SetHeader(name, value string)  { c.rw.Header().Set(name, value) }
func (c *testContext) Written() bool                 { return c.rw.Written() }
func (c *testContext) Logger() *slog.Logger          { return c.logger }

func (c *testContext) PostForm() (url.Values, error) {
	err := c.request.ParseMultipartForm(1 << 20)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, err
	}
	return c.request.PostForm, nil
}

func (c *testContext) JSON(code int, v any) error {
	c.rw.Header().Set("Content-Type", "application/json")
	c.rw.WriteHeader(code)
	return json.NewEncoder(c.rw).Encode(v)
}

func (c *testContext) String(code int, s string) error {
	c.rw.WriteHeader(code)
	_, err := c.rw.Write([]byte(s))
	return err
}

func (c *testContext) NoContent(code int) error {
	c.rw.WriteHeader(code)
	return nil
}

func (c *testContext) Error(code int, message string, opts ...internal.HTTPErrorOption) *internal.HTTPError {
	err := internal.NewHTTPError(code, message)
	for _, opt := range opts {
		opt(err)
	}
	return err
}

func (c *testContext) LogDebug(msg string, attrs ...any) {
	c.logger.DebugContext(c.request.Context(), msg, attrs...)
}

func (c *testContext) LogInfo(msg string, attrs ...any) {
	c.logger.InfoContext(c.request.Context(), msg, attrs...)
}

func (c *testContext) LogWarn(msg string, attrs ...any) {
	c.logger.WarnContext(c.request.Context(), msg, attrs...)
}

func (c *testContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.request.Context(), msg, attrs...)
}

func (c *testContext) Set(key, value any) {
	c.request = c.request.WithContext(context.WithValue(c.request.Context(), key, value))
}

func (c *testContext) Get(key any) any { return c.request.Context().Value(key) }

func (c *testContext) SetRequest(r *http.Request) { c.request = r }

func (c *testContext) ResponseWriter() *internal.ResponseWriter { return c.rw }

func (c *testContext) Fork(w http.ResponseWriter) internal.Context {
	return &testContext{
		rw:      internal.NewResponseWriter(w),
		request: c.request.WithContext(c.request.Context()),
		logger:  c.logger,
	}
}
