// Package mailhog forwards composed emails to a local capture service's
// HTTP API instead of delivering them.
package mailhog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/mail"
	"net/textproto"
	"net/url"

	"github.com/dmitrymomot/orderdesk/pkg/mailer"
)

// Headers carried as top-level payload fields.
var topLevelHeaders = map[string]struct{}{
	"From":         {},
	"To":           {},
	"Subject":      {},
	"Mime-Version": {},
}

// Payload is the JSON document posted to the capture API.
type Payload struct {
	Headers map[string]string `json:"Headers"`
	From    string            `json:"From"`
	Subject string            `json:"Subject"`
	Body    string            `json:"Body"`
	To      []string          `json:"To"`
}

// Sender implements mailer.Sender by posting to the capture API.
type Sender struct {
	client *http.Client
	config Config
}

// Option configures the Sender.
type Option func(*Sender)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Sender) {
		if c != nil {
			s.client = c
		}
	}
}

// New creates a capture-forwarding sender.
func New(cfg Config, opts ...Option) (*Sender, error) {
	u, err := url.Parse(cfg.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.Join(mailer.ErrInvalidConfig, fmt.Errorf("mailhog: invalid api url %q", cfg.APIURL))
	}

	s := &Sender{
		client: &http.Client{Timeout: cfg.Timeout},
		config: cfg,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Send implements mailer.Sender.
// Connection failures wrap mailer.ErrCaptureUnreachable; non-2xx answers
// wrap mailer.ErrCaptureRejected.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	body, err := json.Marshal(s.buildPayload(email))
	if err != nil {
		return fmt.Errorf("mailhog: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.APIURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("mailhog: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Join(mailer.ErrCaptureUnreachable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Join(mailer.ErrCaptureRejected, fmt.Errorf("mailhog: unexpected status %d", resp.StatusCode))
	}
	return nil
}

// Healthcheck verifies the capture service accepts connections.
// Any HTTP answer counts as reachable.
func (s *Sender) Healthcheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.config.APIURL, nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Join(mailer.ErrCaptureUnreachable, err)
	}
	return resp.Body.Close()
}

func (s *Sender) buildPayload(email *mailer.Email) Payload {
	headers := make(map[string]string, len(email.Headers)+1)
	for k, v := range email.Headers {
		if _, ok := topLevelHeaders[textproto.CanonicalMIMEHeaderKey(k)]; ok {
			continue
		}
		headers[k] = v
	}
	if email.ReplyTo != "" {
		headers["Reply-To"] = email.ReplyTo
	}

	return Payload{
		From:    s.envelopeFrom(email),
		To:      email.To,
		Subject: email.Subject,
		Body:    email.Text,
		Headers: headers,
	}
}

// envelopeFrom returns the bare sender address, stripping any display name.
func (s *Sender) envelopeFrom(email *mailer.Email) string {
	if s.config.From != "" {
		return s.config.From
	}
	from := email.From
	if from == "" {
		from = email.Header("From")
	}
	if addr, err := mail.ParseAddress(from); err == nil {
		return addr.Address
	}
	return from
}
