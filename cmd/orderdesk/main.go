// Command orderdesk serves the custom order form endpoint.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/orderdesk"
	"github.com/dmitrymomot/orderdesk/middlewares"
	"github.com/dmitrymomot/orderdesk/order"
	"github.com/dmitrymomot/orderdesk/pkg/config"
	"github.com/dmitrymomot/orderdesk/pkg/logger"
	"github.com/dmitrymomot/orderdesk/pkg/mailer"
	"github.com/dmitrymomot/orderdesk/pkg/metrics"
)

const metricsPath = "/metrics"

func main() {
	if err := run(); err != nil {
		slog.Error("orderdesk stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	cfg.Log.Sentry.MinLevel = slog.LevelWarn
	log, flush := logger.NewWithSentry(cfg.Log, middlewares.RequestIDExtractor())

	m, err := metrics.New()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	app, err := newApp(cfg, log, m)
	if err != nil {
		return err
	}

	log.Info("starting orderdesk",
		slog.String("addr", cfg.Addr),
		slog.String("mail_driver", cfg.Mail.Driver),
		slog.String("order_path", cfg.Order.Path),
	)

	return app.Run(cfg.Addr,
		orderdesk.Logger(log),
		orderdesk.ShutdownTimeout(cfg.ShutdownTimeout),
		orderdesk.ShutdownHook(flush),
	)
}

// newApp wires the sender, the order service and the middleware chain.
func newApp(cfg Config, log *slog.Logger, m *metrics.Metrics) (*orderdesk.App, error) {
	sender, err := newSender(cfg, log)
	if err != nil {
		return nil, err
	}
	mail := mailer.New(sender,
		mailer.WithDefaultFrom(mailer.Recipient(cfg.Order.FromName, cfg.Order.FromAddress)),
		mailer.WithTimeout(cfg.Mail.Timeout),
	)

	svc := order.NewService(mail, cfg.Order,
		order.WithCaptureMode(cfg.Mail.IsCapture()),
		order.WithLogger(log.With("component", "order")),
		order.WithMetrics(m),
	)

	return orderdesk.New(
		orderdesk.WithCustomLogger(log),
		orderdesk.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Metrics(m),
			middlewares.RequestLogger(middlewares.WithRequestLoggerSkip("/health/live", "/health/ready", metricsPath)),
			middlewares.Recover(),
			middlewares.Timeout(cfg.RequestTimeout),
		),
		orderdesk.WithHandlers(order.NewHandler(svc, order.WithPaths(cfg.Order.Path, order.APIPath))),
		orderdesk.WithMount(metricsPath, m.Handler()),
		orderdesk.WithErrorHandler(handleError),
		orderdesk.WithNotFoundHandler(handleNotFound),
		orderdesk.WithMethodNotAllowedHandler(handleMethodNotAllowed),
		orderdesk.WithHealthChecks(
			orderdesk.WithReadinessCheck("mailer", mail.Healthcheck),
		),
	), nil
}
