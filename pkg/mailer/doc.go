// Package mailer provides a provider-agnostic plain-text email interface.
//
// The package separates message composition (done by callers) from delivery,
// allowing providers to be swapped by configuration.
//
// # Architecture
//
//   - Sender: interface that email providers implement
//   - Mailer: wraps a Sender with validation, a default From and a timeout
//   - LogSender: development Sender that logs messages
//
// Providers live in subpackages:
//
//   - smtp: direct delivery through an SMTP relay (go-mail)
//   - resend: Resend HTTP API
//   - postmark: Postmark HTTP API
//   - mailhog: forwarding to a local capture service's HTTP API
//
// # Usage
//
//	sender := smtp.New(smtp.Config{Host: "localhost", Port: 25})
//	m := mailer.New(sender,
//		mailer.WithDefaultFrom("Orders <orders@example.com>"),
//		mailer.WithTimeout(10*time.Second),
//	)
//
//	err := m.Send(ctx, &mailer.Email{
//		To:      []string{"ops@example.com", "customer@example.com"},
//		Subject: "Custom Order from Acme",
//		Text:    body,
//		ReplyTo: "customer@example.com",
//	})
//
// # Errors
//
//   - ErrNoRecipient, ErrNoSubject, ErrNoContent: rejected before sending
//   - ErrSendFailed: provider failure (joined with the provider error)
//   - ErrCaptureUnreachable, ErrCaptureRejected: capture forwarding failures
//   - ErrInvalidConfig: provider constructed without required settings
//
// Use errors.Is to classify:
//
//	if errors.Is(err, mailer.ErrCaptureUnreachable) {
//		// capture service down
//	}
package mailer
