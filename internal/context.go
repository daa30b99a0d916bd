package internal

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
)

// defaultMaxFormMemory bounds an urlencoded body and the in-memory part of
// a multipart form.
const defaultMaxFormMemory = 10 << 20

// Context provides request/response access and helper methods.
// It also implements context.Context by delegating to the underlying request context.
type Context interface {
	context.Context

	// Request returns the underlying *http.Request.
	Request() *http.Request

	// Response returns the underlying http.ResponseWriter.
	Response() http.ResponseWriter

	// Context returns the request's context.Context.
	Context() context.Context

	// Param returns the URL parameter value by name.
	// Returns empty string if the parameter doesn't exist.
	Param(name string) string

	// Query returns the query parameter value by name.
	// Returns empty string if the parameter doesn't exist.
	Query(name string) string

	// Form returns the form value by name.
	// Returns empty string if the field doesn't exist.
	Form(name string) string

	// PostForm parses a urlencoded or multipart body and returns its fields.
	// Unlike Form, it lets callers tell an absent key from an empty one.
	// Urlencoded bodies are split on '&' only and malformed escapes are
	// kept literally. Other content types yield no fields.
	PostForm() (url.Values, error)

	// Header returns the request header value by name.
	Header(name string) string

	// SetHeader sets a response header.
	SetHeader(name, value string)

	// JSON writes a JSON response with the given status code.
	JSON(code int, v any) error

	// String writes a plain text response with the given status code.
	String(code int, s string) error

	// NoContent writes a response with no body.
	NoContent(code int) error

	// Error creates and returns an HTTPError without writing a response.
	// The error should be returned from the handler to trigger the error handler.
	Error(code int, message string, opts ...HTTPErrorOption) *HTTPError

	// Written returns true if a response has already been written.
	Written() bool

	// Logger returns the logger for advanced usage.
	Logger() *slog.Logger

	LogDebug(msg string, attrs ...any)
	LogInfo(msg string, attrs ...any)
	LogWarn(msg string, attrs ...any)
	LogError(msg string, attrs ...any)

	// Set stores a value in the request context.
	// The value can be retrieved using Get or from c.Context().Value(key).
	Set(key any, value any)

	// Get retrieves a value from the request context.
	// Returns nil if the key is not found.
	Get(key any) any

	// SetRequest replaces the request, typically to attach a derived context.
	// Later middleware and the handler see the new request.
	SetRequest(r *http.Request)

	// ResponseWriter returns the wrapped writer that tracks status and size.
	ResponseWriter() *ResponseWriter

	// Fork returns a copy of the context that writes to w. The copy works on
	// a shallow copy of the request, so Set and SetRequest on one side are
	// not seen by the other.
	Fork(w http.ResponseWriter) Context
}

// requestContext implements the Context interface.
type requestContext struct {
	request        *http.Request
	responseWriter *ResponseWriter
	logger         *slog.Logger
}

// newContext creates a request context, reusing the response wrapper when the
// writer has already been wrapped by an outer middleware.
func newContext(w http.ResponseWriter, r *http.Request, logger *slog.Logger) *requestContext {
	return &requestContext{
		request:        r,
		responseWriter: NewResponseWriter(w),
		logger:         logger,
	}
}

func (c *requestContext) Request() *http.Request {
	return c.request
}

func (c *requestContext) Response() http.ResponseWriter {
	return c.responseWriter
}

func (c *requestContext) Context() context.Context {
	return c.request.Context()
}

func (c *requestContext) Deadline() (time.Time, bool) {
	return c.request.Context().Deadline()
}

func (c *requestContext) Done() <-chan struct{} {
	return c.request.Context().Done()
}

func (c *requestContext) Err() error {
	return c.request.Context().Err()
}

func (c *requestContext) Value(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) Param(name string) string {
	return chi.URLParam(c.request, name)
}

func (c *requestContext) Query(name string) string {
	return c.request.URL.Query().Get(name)
}

func (c *requestContext) Form(name string) string {
	return c.request.FormValue(name)
}

func (c *requestContext) PostForm() (url.Values, error) {
	if c.request.PostForm != nil {
		return c.request.PostForm, nil
	}

	mediaType, _, _ := mime.ParseMediaType(c.request.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded":
		vals := url.Values{}
		if c.request.Body != nil {
			body, err := io.ReadAll(http.MaxBytesReader(c.responseWriter, c.request.Body, defaultMaxFormMemory))
			if err != nil {
				return url.Values{}, err
			}
			vals = parseURLEncoded(string(body))
		}
		c.request.PostForm = vals
		return vals, nil
	case "multipart/form-data":
		if err := c.request.ParseMultipartForm(defaultMaxFormMemory); err != nil {
			return url.Values{}, err
		}
		if c.request.PostForm == nil {
			return url.Values{}, nil
		}
		return c.request.PostForm, nil
	default:
		return url.Values{}, nil
	}
}

func (c *requestContext) Header(name string) string {
	return c.request.Header.Get(name)
}

func (c *requestContext) SetHeader(name, value string) {
	c.responseWriter.Header().Set(name, value)
}

func (c *requestContext) JSON(code int, v any) error {
	c.responseWriter.Header().Set("Content-Type", "application/json")
	c.responseWriter.WriteHeader(code)
	return json.NewEncoder(c.responseWriter).Encode(v)
}

func (c *requestContext) String(code int, s string) error {
	c.responseWriter.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.responseWriter.WriteHeader(code)
	_, err := c.responseWriter.Write([]byte(s))
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.responseWriter.WriteHeader(code)
	return nil
}

func (c *requestContext) Error(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return newHTTPError(code, message, opts)
}

func (c *requestContext) Written() bool {
	return c.responseWriter.Written()
}

func (c *requestContext) Logger() *slog.Logger {
	return c.logger
}

func (c *requestContext) LogDebug(msg string, attrs ...any) {
	c.logger.DebugContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogInfo(msg string, attrs ...any) {
	c.logger.InfoContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogWarn(msg string, attrs ...any) {
	c.logger.WarnContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) Set(key, value any) {
	ctx := context.WithValue(c.request.Context(), key, value)
	c.request = c.request.WithContext(ctx)
}

func (c *requestContext) Get(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) Fork(w http.ResponseWriter) Context {
	return newContext(w, c.request.WithContext(c.request.Context()), c.logger)
}

func (c *requestContext) SetRequest(r *http.Request) {
	if r != nil {
		c.request = r
	}
}

func (c *requestContext) ResponseWriter() *ResponseWriter {
	return c.responseWriter
}
