// Package postmark delivers plain-text email through the Postmark API.
package postmark

import (
	"context"
	"errors"
	"fmt"
	"net/textproto"
	"slices"

	"github.com/mrz1836/postmark"

	"github.com/dmitrymomot/orderdesk/pkg/mailer"
)

// Headers Postmark builds from request fields.
var managedHeaders = map[string]struct{}{
	"From":                      {},
	"To":                        {},
	"Subject":                   {},
	"Reply-To":                  {},
	"Mime-Version":              {},
	"Content-Type":              {},
	"Content-Transfer-Encoding": {},
}

// Sender implements mailer.Sender using Postmark's transactional API.
type Sender struct {
	client *postmark.Client
	config Config
}

// New creates a Postmark sender. The server token is required.
func New(cfg Config) (*Sender, error) {
	if cfg.ServerToken == "" {
		return nil, errors.Join(mailer.ErrInvalidConfig, errors.New("postmark: server token is required"))
	}
	return &Sender{
		client: postmark.NewClient(cfg.ServerToken, cfg.AccountToken),
		config: cfg,
	}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	resp, err := s.client.SendEmail(ctx, s.buildEmail(email))
	if err != nil {
		return fmt.Errorf("postmark: failed to send email: %w", err)
	}
	if resp.ErrorCode > 0 {
		return fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message)
	}
	return nil
}

func (s *Sender) buildEmail(email *mailer.Email) postmark.Email {
	from := email.From
	if from == "" {
		from = s.config.SenderEmail
	}

	replyTo := email.ReplyTo
	if replyTo == "" {
		replyTo = email.Header("Reply-To")
	}

	msg := postmark.Email{
		From:     from,
		To:       mailer.JoinRecipients(email.To),
		ReplyTo:  replyTo,
		Subject:  email.Subject,
		TextBody: email.Text,
	}

	// Postmark accepts a single tag; pick the first name deterministically.
	if len(email.Tags) > 0 {
		names := make([]string, 0, len(email.Tags))
		for name := range email.Tags {
			names = append(names, name)
		}
		slices.Sort(names)
		msg.Tag = names[0]
	}

	keys := make([]string, 0, len(email.Headers))
	for k := range email.Headers {
		if _, ok := managedHeaders[textproto.CanonicalMIMEHeaderKey(k)]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	for _, k := range keys {
		msg.Headers = append(msg.Headers, postmark.Header{Name: k, Value: email.Headers[k]})
	}

	return msg
}
