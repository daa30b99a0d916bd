package order

import (
	"errors"
	"net/url"
	"strings"

	"github.com/dmitrymomot/orderdesk/pkg/sanitizer"
	"github.com/dmitrymomot/orderdesk/pkg/validator"
)

// Form field names posted by the order form.
const (
	FieldEmail   = "realemail"
	FieldCompany = "company_name"
	FieldLink    = "url_link"
	FieldDetails = "order_details"
)

// Defaults applied when a field is absent from the form.
const (
	DefaultCompany = "N/A"
	DefaultLink    = "N/A"
	DefaultDetails = "No order details provided."
)

// Submission is a normalized order form submission.
type Submission struct {
	RawEmail      string // realemail as posted, trimmed
	CustomerEmail string // first ;-separated segment of RawEmail, trimmed
	CompanyName   string // HTML-escaped
	OrderFormLink string // URL-sanitized
	OrderDetails  string // <br> variants converted to newlines
}

// trimSet is the byte set stripped from both ends of every field.
// Unicode spaces such as NBSP are kept.
const trimSet = " \t\n\r\x00\x0b"

// ParseForm builds a Submission from posted form values.
// A key that is present but empty keeps the empty value; only absent keys
// fall back to defaults. When a key is repeated the last value wins.
func ParseForm(form url.Values) Submission {
	raw, _ := lookup(form, FieldEmail)
	raw = trim(raw)
	first, _, _ := strings.Cut(raw, ";")

	s := Submission{
		RawEmail:      raw,
		CustomerEmail: trim(first),
		CompanyName:   DefaultCompany,
		OrderFormLink: DefaultLink,
		OrderDetails:  DefaultDetails,
	}
	if v, ok := lookup(form, FieldCompany); ok {
		s.CompanyName = sanitizer.EscapeHTML(trim(v))
	}
	if v, ok := lookup(form, FieldLink); ok {
		s.OrderFormLink = sanitizer.SanitizeURL(trim(v))
	}
	if v, ok := lookup(form, FieldDetails); ok {
		s.OrderDetails = sanitizer.BreaksToNewlines(trim(v))
	}
	return s
}

// Validate reports ErrInvalidEmail when the customer email is unusable.
func (s Submission) Validate() error {
	if err := validator.Apply(validator.ValidEmail(FieldEmail, s.CustomerEmail)); err != nil {
		return errors.Join(ErrInvalidEmail, err)
	}
	return nil
}

func lookup(form url.Values, key string) (string, bool) {
	vs, ok := form[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

func trim(s string) string {
	return strings.Trim(s, trimSet)
}
