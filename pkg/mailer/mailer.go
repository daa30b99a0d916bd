package mailer

import (
	"context"
	"errors"
	"time"
)

// Mailer validates messages, applies the default sender and bounds every
// delivery attempt with a timeout before handing off to a provider.
type Mailer struct {
	sender  Sender
	from    string
	timeout time.Duration
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithDefaultFrom sets the From address used when an Email has none.
func WithDefaultFrom(from string) Option {
	return func(m *Mailer) {
		m.from = from
	}
}

// WithTimeout bounds each Send call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(m *Mailer) {
		if d >= 0 {
			m.timeout = d
		}
	}
}

// New creates a new Mailer around the given provider.
func New(sender Sender, opts ...Option) *Mailer {
	m := &Mailer{sender: sender}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Send validates the email and delivers it through the provider.
// Provider failures are joined with ErrSendFailed so callers can match
// both the generic and the provider-specific sentinel.
func (m *Mailer) Send(ctx context.Context, email *Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	if email.From == "" {
		email.From = m.from
	}

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}

// Healthcheck checks the provider when it supports it.
func (m *Mailer) Healthcheck(ctx context.Context) error {
	if c, ok := m.sender.(Checker); ok {
		return c.Healthcheck(ctx)
	}
	return nil
}
