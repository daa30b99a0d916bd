// Package orderdesk is a small HTTP service that accepts custom order form
// submissions and mails them to the store operator and the customer.
//
// The root package exposes the HTTP application layer built on chi. The
// domain lives in subpackages:
//
//   - order: form parsing, email composition and the submission endpoint
//   - pkg/mailer: the Sender abstraction with smtp, resend, postmark,
//     mailhog and log drivers
//   - pkg/metrics, pkg/health, pkg/logger, pkg/config: operational plumbing
//   - middlewares: CORS, request ID, recovery, timeout, request logging
//     and request metrics
//
// # Quick Start
//
//	app := orderdesk.New(
//	    orderdesk.WithCustomLogger(log),
//	    orderdesk.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.RequestLogger(),
//	        middlewares.Recover(),
//	    ),
//	    orderdesk.WithHandlers(order.NewHandler(svc)),
//	    orderdesk.WithHealthChecks(
//	        orderdesk.WithReadinessCheck("mail", m.Healthcheck),
//	    ),
//	)
//
//	if err := app.Run(":8080", orderdesk.Logger(log)); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
//
// # Handlers
//
// Handlers implement the [Handler] interface to declare routes and receive
// dependencies through their constructor:
//
//	func (h *Handler) Routes(r orderdesk.Router) {
//	    r.Any("/api/orders", h.submit, middlewares.CORS(...))
//	}
//
// Handlers return errors; the [ErrorHandler] set with [WithErrorHandler]
// turns them into a response.
package orderdesk
