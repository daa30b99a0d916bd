package internal

// Handler declares routes on a router.
//
// Example:
//
//	type OrderHandler struct {
//	    svc *order.Service
//	}
//
//	func (h *OrderHandler) Routes(r orderdesk.Router) {
//	    r.POST("/api/orders", h.submit)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands it to the app's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
// Middleware can inspect the request, short-circuit processing,
// or observe the response through c.ResponseWriter().
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
