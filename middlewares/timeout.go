package middlewares

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/orderdesk/internal"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// Timeout returns middleware that bounds request handling. The handler runs
// on a forked context with the deadline attached, and its response is
// buffered. If it returns in time the buffer is copied to the client;
// otherwise a *TimeoutError goes to the app's ErrorHandler and anything the
// handler writes afterwards is discarded.
//
// The handler goroutine keeps running after the timeout. Outbound calls
// must honour ctx.Done() to stop early. Handlers behind Timeout cannot
// stream or hijack the connection.
func Timeout(timeout time.Duration) internal.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()

			c.SetRequest(c.Request().WithContext(ctx))
			c.Set(timeoutContextKey{}, ctx)

			buf := newBufferedResponse(c.Response().Header())
			inner := c.Fork(buf)

			done := make(chan error, 1)
			go func() {
				done <- next(inner)
			}()

			select {
			case err := <-done:
				buf.copyTo(c.Response())
				return err
			case <-ctx.Done():
				buf.expire()
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					c.LogWarn("request timeout", "timeout", timeout.String())
					return &TimeoutError{Duration: timeout}
				}
				return ctx.Err()
			}
		}
	}
}

// timeoutContextKey is used to store the timeout context.
type timeoutContextKey struct{}

// GetTimeoutContext retrieves the timeout context if available.
func GetTimeoutContext(c internal.Context) context.Context {
	if v, ok := c.Get(timeoutContextKey{}).(context.Context); ok {
		return v
	}
	return c.Context()
}

// bufferedResponse holds a handler's response until Timeout decides whether
// it reaches the client. After expire every write fails with
// http.ErrHandlerTimeout.
type bufferedResponse struct {
	header  http.Header
	body    bytes.Buffer
	status  int
	wrote   bool
	expired bool
	mu      sync.Mutex
}

func newBufferedResponse(h http.Header) *bufferedResponse {
	return &bufferedResponse{header: h.Clone(), status: http.StatusOK}
}

func (b *bufferedResponse) Header() http.Header {
	return b.header
}

func (b *bufferedResponse) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.expired || b.wrote {
		return
	}
	b.status = code
	b.wrote = true
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.expired {
		return 0, http.ErrHandlerTimeout
	}
	b.wrote = true
	return b.body.Write(p)
}

func (b *bufferedResponse) expire() {
	b.mu.Lock()
	b.expired = true
	b.mu.Unlock()
}

// copyTo replaces w's headers with the buffered ones and, if the handler
// wrote anything, sends the status and body. It must only run after the
// handler has returned.
func (b *bufferedResponse) copyTo(w http.ResponseWriter) {
	dst := w.Header()
	for k := range dst {
		if _, ok := b.header[k]; !ok {
			delete(dst, k)
		}
	}
	for k, v := range b.header {
		dst[k] = v
	}

	if !b.wrote {
		return
	}
	w.WriteHeader(b.status)
	if b.body.Len() > 0 {
		_, _ = w.Write(b.body.Bytes())
	}
}
