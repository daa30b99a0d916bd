package order

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/orderdesk/pkg/logger"
	"github.com/dmitrymomot/orderdesk/pkg/mailer"
)

// Result is the response envelope returned to the order form.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Recorder receives one outcome per handled submission.
// *metrics.Metrics satisfies it.
type Recorder interface {
	Submission(outcome string)
}

// Service validates submissions and dispatches the order email.
type Service struct {
	sender   mailer.Sender
	logger   *slog.Logger
	recorder Recorder
	config   Config
	capture  bool
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for failed deliveries.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics reports submission outcomes to r.
func WithMetrics(r Recorder) Option {
	return func(s *Service) {
		s.recorder = r
	}
}

// WithCaptureMode switches the response messages to the capture variant,
// used when the sender forwards to MailHog instead of delivering.
func WithCaptureMode(enabled bool) Option {
	return func(s *Service) {
		s.capture = enabled
	}
}

// NewService creates an order service sending through sender.
func NewService(sender mailer.Sender, cfg Config, opts ...Option) *Service {
	s := &Service{
		sender: sender,
		config: cfg,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates the submission, sends the order email and maps the
// outcome to the response envelope. The sender is never called for an
// invalid customer email.
func (s *Service) Submit(ctx context.Context, sub Submission) Result {
	if err := sub.Validate(); err != nil {
		s.record(OutcomeInvalidEmail)
		s.logger.InfoContext(ctx, "order rejected",
			slog.String("realemail", sub.RawEmail),
			slog.Any("error", err),
		)
		return Result{Message: MsgInvalidEmail}
	}

	email := s.config.Compose(sub)
	err := s.sender.Send(ctx, email)

	if s.capture {
		return s.captureResult(ctx, email, err)
	}

	if err != nil {
		s.record(OutcomeSendFailed)
		s.logger.ErrorContext(ctx, "order email not sent",
			slog.Any("to", email.To),
			slog.String("subject", email.Subject),
			slog.Any("error", err),
		)
		return Result{Message: MsgSendFailed}
	}

	s.record(OutcomeSent)
	return Result{Success: true, Message: MsgSent}
}

// RejectMethod answers a request made with anything but POST.
func (s *Service) RejectMethod(ctx context.Context, method string) Result {
	s.record(OutcomeMethodNotAllowed)
	s.logger.DebugContext(ctx, "order endpoint called with wrong method", slog.String("method", method))
	return Result{Message: MsgInvalidMethod}
}

// captureResult reports forwarding failures as success unless the
// service runs in strict mode.
func (s *Service) captureResult(ctx context.Context, email *mailer.Email, err error) Result {
	if err == nil {
		s.record(OutcomeForwarded)
		return Result{Success: true, Message: MsgForwarded}
	}

	res := Result{Success: !s.config.CaptureStrict}
	if errors.Is(err, mailer.ErrCaptureRejected) {
		s.record(OutcomeForwardRejected)
		res.Message = MsgForwardRejected
	} else {
		s.record(OutcomeForwardUnreachable)
		res.Message = MsgForwardUnreachable
	}

	s.logger.ErrorContext(ctx, "order email not forwarded to capture service",
		slog.Any("to", email.To),
		slog.String("subject", email.Subject),
		slog.Any("error", err),
	)
	return res
}

func (s *Service) record(outcome string) {
	if s.recorder != nil {
		s.recorder.Submission(outcome)
	}
}
