package resend

import (
	"context"
	"fmt"
	"net/http"
	"net/textproto"
	"strconv"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/orderdesk/pkg/mailer"
)

// Headers the Resend API derives from request fields; passing them as
// custom headers is rejected or duplicated.
var managedHeaders = map[string]struct{}{
	"From":                      {},
	"To":                        {},
	"Subject":                   {},
	"Reply-To":                  {},
	"Mime-Version":              {},
	"Content-Type":              {},
	"Content-Transfer-Encoding": {},
}

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	client *resend.Client
	config Config
}

// New creates a new Resend sender.
func New(cfg Config) (*Sender, error) {
	endpoint, err := cfg.validate()
	if err != nil {
		return nil, err
	}
	client := resend.NewCustomClient(&http.Client{Timeout: cfg.timeout()}, cfg.APIKey)
	if endpoint != nil {
		client.BaseURL = endpoint
	}
	return &Sender{client: client, config: cfg}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	_, err := s.client.Emails.SendWithContext(ctx, s.buildRequest(email))
	if err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}
	return nil
}

func (s *Sender) buildRequest(email *mailer.Email) *resend.SendEmailRequest {
	from := email.From
	if from == "" {
		from = s.config.from()
	}

	replyTo := email.ReplyTo
	if replyTo == "" {
		replyTo = email.Header("Reply-To")
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Text:    email.Text,
		ReplyTo: replyTo,
	}

	headers := make(map[string]string, len(email.Headers))
	for k, v := range email.Headers {
		if _, ok := managedHeaders[textproto.CanonicalMIMEHeaderKey(k)]; ok {
			continue
		}
		headers[k] = v
	}
	if len(headers) > 0 {
		req.Headers = headers
	}

	if len(email.Tags) > 0 {
		req.Tags = convertTags(email.Tags)
	}

	return req
}

func convertTags(tags mailer.Tags) []resend.Tag {
	result := make([]resend.Tag, 0, len(tags))
	for name, value := range tags {
		result = append(result, resend.Tag{
			Name:  name,
			Value: tagValue(value),
		})
	}
	return result
}

// tagValue converts any value to a string for Resend's tag API.
// Presence-only tags (struct{}{}) become "true".
func tagValue(v any) string {
	switch val := v.(type) {
	case nil, struct{}:
		return "true"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
