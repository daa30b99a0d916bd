package main

import (
	"time"

	"github.com/dmitrymomot/orderdesk/order"
	"github.com/dmitrymomot/orderdesk/pkg/logger"
	"github.com/dmitrymomot/orderdesk/pkg/mailer"
	"github.com/dmitrymomot/orderdesk/pkg/mailer/mailhog"
	"github.com/dmitrymomot/orderdesk/pkg/mailer/postmark"
	"github.com/dmitrymomot/orderdesk/pkg/mailer/resend"
	"github.com/dmitrymomot/orderdesk/pkg/mailer/smtp"
)

// Config is the service configuration, read from the environment and an
// optional .env file.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	Log      logger.Config
	Order    order.Config
	Mail     mailer.Config
	SMTP     smtp.Config
	Resend   resend.Config
	Postmark postmark.Config
	MailHog  mailhog.Config
}
