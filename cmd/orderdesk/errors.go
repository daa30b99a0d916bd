package main

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/orderdesk"
	"github.com/dmitrymomot/orderdesk/middlewares"
	"github.com/dmitrymomot/orderdesk/order"
)

var unknownError = order.Result{Message: order.MsgUnknown}

// handleError renders any escaped error as the order envelope so clients
// never see anything else.
func handleError(c orderdesk.Context, err error) error {
	status := http.StatusInternalServerError
	var sc interface{ StatusCode() int }
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	switch {
	case middlewares.IsPanicError(err):
		c.LogError("panic in handler", "error", err)
	case status >= http.StatusInternalServerError:
		c.LogError("request failed", "error", err)
	default:
		c.LogWarn("request rejected", "error", err)
	}

	return c.JSON(status, unknownError)
}

func handleNotFound(c orderdesk.Context) error {
	return c.JSON(http.StatusNotFound, unknownError)
}

func handleMethodNotAllowed(c orderdesk.Context) error {
	return c.JSON(http.StatusMethodNotAllowed, unknownError)
}
