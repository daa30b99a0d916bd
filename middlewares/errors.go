package middlewares

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// PanicError represents a recovered panic.
type PanicError struct {
	Value any    // The panic value
	Stack []byte // Stack trace (nil if disabled)
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// StatusCode reports the HTTP status a panic maps to.
func (e *PanicError) StatusCode() int {
	return http.StatusInternalServerError
}

// TimeoutError represents a request that outlived its deadline.
type TimeoutError struct {
	Duration time.Duration // The timeout that was exceeded
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timeout after %s", e.Duration)
}

// StatusCode reports the HTTP status a timeout maps to.
func (e *TimeoutError) StatusCode() int {
	return http.StatusServiceUnavailable
}

// Is lets errors.Is(err, context.DeadlineExceeded) match a TimeoutError.
func (e *TimeoutError) Is(target error) bool {
	return target == context.DeadlineExceeded
}

// IsPanicError returns true if the error is a PanicError.
func IsPanicError(err error) bool {
	_, ok := AsPanicError(err)
	return ok
}

// IsTimeoutError returns true if the error is a TimeoutError.
func IsTimeoutError(err error) bool {
	_, ok := AsTimeoutError(err)
	return ok
}

// AsPanicError extracts the PanicError from an error if present.
func AsPanicError(err error) (*PanicError, bool) {
	var pe *PanicError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// AsTimeoutError extracts the TimeoutError from an error if present.
func AsTimeoutError(err error) (*TimeoutError, bool) {
	var te *TimeoutError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}
