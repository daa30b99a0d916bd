package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
// It accepts a fully-prepared Email and handles the actual delivery.
type Sender interface {
	// Send delivers an email message.
	// Returns nil when the provider accepted the message.
	Send(ctx context.Context, email *Email) error
}

// SenderFunc adapts an ordinary function to the Sender interface.
type SenderFunc func(ctx context.Context, email *Email) error

// Send calls f(ctx, email).
func (f SenderFunc) Send(ctx context.Context, email *Email) error {
	return f(ctx, email)
}

// Checker is implemented by senders that can check their transport
// for readiness without sending a message.
type Checker interface {
	Healthcheck(ctx context.Context) error
}
