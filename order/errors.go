package order

import "errors"

// ErrInvalidEmail indicates the first realemail segment is missing or malformed.
var ErrInvalidEmail = errors.New("invalid or missing customer email")

// Messages returned in the response envelope.
const (
	MsgSent               = "Order submitted successfully! A confirmation email has been sent."
	MsgSendFailed         = "There was an issue sending the order email. Please check server logs or contact support."
	MsgForwarded          = "Order data received. Email forwarded to MailHog."
	MsgForwardUnreachable = "Order data received, but failed to forward to MailHog. Is MailHog running?"
	MsgForwardRejected    = "Order data received, but MailHog API returned an error."
	MsgInvalidEmail       = "Invalid or missing customer email address."
	MsgInvalidMethod      = "Invalid request method. Only POST requests are accepted."
	MsgUnknown            = "An unknown error occurred."
)

// Submission outcomes reported to the metrics recorder.
const (
	OutcomeSent               = "sent"
	OutcomeSendFailed         = "send_failed"
	OutcomeForwarded          = "forwarded"
	OutcomeForwardUnreachable = "forward_unreachable"
	OutcomeForwardRejected    = "forward_rejected"
	OutcomeInvalidEmail       = "invalid_email"
	OutcomeMethodNotAllowed   = "method_not_allowed"
)
