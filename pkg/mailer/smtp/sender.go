// Package smtp delivers plain-text email through an SMTP relay using go-mail.
package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/textproto"

	mail "github.com/go-mail/mail"

	"github.com/dmitrymomot/orderdesk/pkg/mailer"
)

// Headers written by go-mail itself or set from Email fields.
var managedHeaders = map[string]struct{}{
	"From":                      {},
	"To":                        {},
	"Subject":                   {},
	"Reply-To":                  {},
	"Mime-Version":              {},
	"Content-Type":              {},
	"Content-Transfer-Encoding": {},
}

// Sender implements mailer.Sender over SMTP.
type Sender struct {
	dialer *mail.Dialer
	config Config
}

// New creates an SMTP sender.
func New(cfg Config) (*Sender, error) {
	if cfg.Host == "" || cfg.Port <= 0 {
		return nil, errors.Join(mailer.ErrInvalidConfig, errors.New("smtp: host and port are required"))
	}

	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.Timeout = cfg.Timeout
	d.LocalName = cfg.LocalName
	d.TLSConfig = &tls.Config{
		ServerName:         cfg.Host,
		InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec // opt-in for local relays
	}

	switch cfg.TLSMode {
	case TLSModeSSL:
		d.SSL = true
	case TLSModeNone:
		d.StartTLSPolicy = mail.NoStartTLS
	case TLSModeStartTLS, "":
		d.StartTLSPolicy = mail.OpportunisticStartTLS
	default:
		return nil, errors.Join(mailer.ErrInvalidConfig, fmt.Errorf("smtp: unknown tls mode %q", cfg.TLSMode))
	}

	return &Sender{dialer: d, config: cfg}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.dialer.DialAndSend(buildMessage(email)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// Healthcheck opens and closes a connection to the relay.
func (s *Sender) Healthcheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	conn, err := s.dialer.Dial()
	if err != nil {
		return fmt.Errorf("smtp dial %s:%d: %w", s.config.Host, s.config.Port, err)
	}
	return conn.Close()
}

// buildMessage renders an Email as a single-part 8bit text/plain message.
func buildMessage(email *mailer.Email) *mail.Message {
	m := mail.NewMessage(
		mail.SetCharset("UTF-8"),
		mail.SetEncoding(mail.Unencoded),
	)

	from := email.From
	if from == "" {
		from = email.Header("From")
	}
	m.SetHeader("From", from)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	replyTo := email.ReplyTo
	if replyTo == "" {
		replyTo = email.Header("Reply-To")
	}
	if replyTo != "" {
		m.SetHeader("Reply-To", replyTo)
	}

	for k, v := range email.Headers {
		if _, ok := managedHeaders[textproto.CanonicalMIMEHeaderKey(k)]; ok {
			continue
		}
		m.SetHeader(k, v)
	}

	m.SetBody("text/plain", email.Text)
	return m
}
