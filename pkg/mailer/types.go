package mailer

import (
	"fmt"
	"strings"
)

// Tags represents email tags/categories that can be either presence-only
// (using struct{}{}) or key-value pairs (using string values).
//   - Postmark: uses the first tag name only
//   - Resend: uses name-value pairs (presence-only tags become name="true")
type Tags map[string]any

// SimpleTags creates presence-only tags from a list of tag names.
func SimpleTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, n := range names {
		t[n] = struct{}{}
	}
	return t
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// SplitRecipients splits a comma-joined recipient list into trimmed,
// non-empty addresses.
func SplitRecipients(list string) []string {
	parts := strings.Split(list, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinRecipients joins addresses with a comma, the form used by the
// To header and by providers that accept a single recipient string.
func JoinRecipients(to []string) string {
	return strings.Join(to, ",")
}

// Email represents a fully-prepared plain-text email message ready for sending.
type Email struct {
	Headers map[string]string // Extra headers, already formatted
	Tags    Tags              // Provider-specific tags/categories
	Subject string            // Email subject
	Text    string            // Plain text body
	From    string            // Override default sender (if provider allows)
	ReplyTo string            // Reply-to address
	To      []string          // Recipients (at least one required)
}

// Header returns the value of a header using a case-insensitive key match.
func (e *Email) Header(name string) string {
	if v, ok := e.Headers[name]; ok {
		return v
	}
	for k, v := range e.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// Validate checks that the email carries the minimum required fields.
func (e *Email) Validate() error {
	if e == nil || len(e.To) == 0 {
		return ErrNoRecipient
	}
	if strings.TrimSpace(e.Subject) == "" {
		return ErrNoSubject
	}
	if e.Text == "" {
		return ErrNoContent
	}
	return nil
}
