package order

import (
	"strings"

	"github.com/dmitrymomot/orderdesk/pkg/mailer"
)

var separator = strings.Repeat("-", 74)

// messageHeaders are set on every order email.
var messageHeaders = map[string]string{
	"MIME-Version":              "1.0",
	"Content-Type":              "text/plain; charset=UTF-8",
	"Content-Transfer-Encoding": "8bit",
}

// Subject returns the email subject for a submission.
func Subject(s Submission) string {
	return "Custom Order from " + s.CompanyName
}

// RenderBody renders the plain-text order summary.
func RenderBody(title string, s Submission) string {
	var b strings.Builder
	b.WriteString(title + " - Custom Order\n\n")
	b.WriteString("A custom order was submitted via the Custom Order Form.\n\n")
	b.WriteString("Company: " + s.CompanyName + "\n")
	b.WriteString("Customer Email: " + s.CustomerEmail + "\n")
	b.WriteString("Your order form link is: " + s.OrderFormLink + "\n")
	b.WriteString("Bookmark this link - this order form will be updated regularly with updated order history, and should help with your reordering.\n\n")
	b.WriteString(separator + "\n\n")
	b.WriteString("ORDER DETAILS:\n")
	b.WriteString(s.OrderDetails)
	b.WriteString("\n\n" + separator + "\n")
	return b.String()
}

// Compose builds the email for a validated submission. It goes to the
// operator and the customer, with replies directed to the customer.
func (c Config) Compose(s Submission) *mailer.Email {
	headers := make(map[string]string, len(messageHeaders))
	for k, v := range messageHeaders {
		headers[k] = v
	}

	return &mailer.Email{
		To:      []string{c.Recipient, s.CustomerEmail},
		From:    mailer.Recipient(c.FromName, c.FromAddress),
		ReplyTo: s.CustomerEmail,
		Subject: Subject(s),
		Text:    RenderBody(c.StoreTitle, s),
		Headers: headers,
		Tags:    mailer.SimpleTags("custom_order"),
	}
}
