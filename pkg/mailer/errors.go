package mailer

import "errors"

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates no text body was provided.
	ErrNoContent = errors.New("email must have text content")

	// ErrSendFailed indicates email sending failed.
	ErrSendFailed = errors.New("failed to send email")

	// ErrCaptureUnreachable indicates the capture service could not be reached.
	ErrCaptureUnreachable = errors.New("capture service unreachable")

	// ErrCaptureRejected indicates the capture service answered with a non-2xx status.
	ErrCaptureRejected = errors.New("capture service rejected message")

	// ErrInvalidConfig indicates a provider was configured without required values.
	ErrInvalidConfig = errors.New("invalid mailer configuration")
)
