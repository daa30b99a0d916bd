package mailer

import (
	"context"
	"log/slog"
	"strings"
)

// LogSender writes emails to the logger instead of delivering them.
// Useful for local development.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a log-based sender.
func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{logger: logger}
}

// Send logs the email and always succeeds.
func (s *LogSender) Send(ctx context.Context, email *Email) error {
	s.logger.InfoContext(ctx, "email not sent (log driver)",
		slog.String("to", strings.Join(email.To, ", ")),
		slog.String("from", email.From),
		slog.String("reply_to", email.ReplyTo),
		slog.String("subject", email.Subject),
		slog.String("body", email.Text),
	)
	return nil
}
