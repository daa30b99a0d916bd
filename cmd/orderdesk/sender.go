package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/orderdesk/pkg/mailer"
	"github.com/dmitrymomot/orderdesk/pkg/mailer/mailhog"
	"github.com/dmitrymomot/orderdesk/pkg/mailer/postmark"
	"github.com/dmitrymomot/orderdesk/pkg/mailer/resend"
	"github.com/dmitrymomot/orderdesk/pkg/mailer/smtp"
)

// newSender returns the provider selected by MAIL_DRIVER.
func newSender(cfg Config, log *slog.Logger) (mailer.Sender, error) {
	var (
		sender mailer.Sender
		err    error
	)

	switch cfg.Mail.Driver {
	case mailer.DriverSMTP:
		sender, err = asSender(smtp.New(cfg.SMTP))
	case mailer.DriverResend:
		sender, err = asSender(resend.New(cfg.Resend))
	case mailer.DriverPostmark:
		sender, err = asSender(postmark.New(cfg.Postmark))
	case mailer.DriverMailHog:
		sender, err = asSender(mailhog.New(cfg.MailHog))
	case mailer.DriverLog, "":
		sender = mailer.NewLogSender(log.With("component", "mailer"))
	default:
		err = fmt.Errorf("unknown mail driver %q", cfg.Mail.Driver)
	}

	if err != nil {
		return nil, errors.Join(mailer.ErrInvalidConfig, err)
	}
	return sender, nil
}

// asSender drops the typed nil a failed constructor returns.
func asSender[S mailer.Sender](s S, err error) (mailer.Sender, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
