package order_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orderdesk/order"
)

func TestParseForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		form url.Values
		want order.Submission
	}{
		{
			name: "absent fields use defaults",
			form: url.Values{"realemail": {"alice@example.com"}},
			want: order.Submission{
				RawEmail:      "alice@example.com",
				CustomerEmail: "alice@example.com",
				CompanyName:   order.DefaultCompany,
				OrderFormLink: order.DefaultLink,
				OrderDetails:  order.DefaultDetails,
			},
		},
		{
			name: "present but empty fields stay empty",
			form: url.Values{
				"realemail":     {"alice@example.com"},
				"company_name":  {""},
				"url_link":      {"   "},
				"order_details": {""},
			},
			want: order.Submission{
				RawEmail:      "alice@example.com",
				CustomerEmail: "alice@example.com",
			},
		},
		{
			name: "first of several addresses",
			form: url.Values{"realemail": {"  a@example.com ; b@example.com;c@example.com "}},
			want: order.Submission{
				RawEmail:      "a@example.com ; b@example.com;c@example.com",
				CustomerEmail: "a@example.com",
				CompanyName:   order.DefaultCompany,
				OrderFormLink: order.DefaultLink,
				OrderDetails:  order.DefaultDetails,
			},
		},
		{
			name: "fields normalized",
			form: url.Values{
				"realemail":     {"alice@example.com"},
				"company_name":  {"  Acme & \"Sons\" <Ltd> 'Co' "},
				"url_link":      {" https://example.com/order form?id=1\n"},
				"order_details": {" Item A<br>Item B<br/>Item C<br />Item D "},
			},
			want: order.Submission{
				RawEmail:      "alice@example.com",
				CustomerEmail: "alice@example.com",
				CompanyName:   "Acme &amp; &quot;Sons&quot; &lt;Ltd&gt; &#039;Co&#039;",
				OrderFormLink: "https://example.com/orderform?id=1",
				OrderDetails:  "Item A\nItem B\nItem C\nItem D",
			},
		},
		{
			name: "repeated keys keep the last value",
			form: url.Values{
				"realemail":    {"first@example.com", "last@example.com"},
				"company_name": {"First", "Last"},
			},
			want: order.Submission{
				RawEmail:      "last@example.com",
				CustomerEmail: "last@example.com",
				CompanyName:   "Last",
				OrderFormLink: order.DefaultLink,
				OrderDetails:  order.DefaultDetails,
			},
		},
		{
			name: "trim strips nul and vertical tab but keeps unicode spaces",
			form: url.Values{
				"realemail":     {"\x00\x0balice@example.com\r\n"},
				"company_name":  {"\u00a0Acme\f"},
				"order_details": {"\x00 Item \t"},
			},
			want: order.Submission{
				RawEmail:      "alice@example.com",
				CustomerEmail: "alice@example.com",
				CompanyName:   "\u00a0Acme\f",
				OrderFormLink: order.DefaultLink,
				OrderDetails:  "Item",
			},
		},
		{
			name: "missing email",
			form: url.Values{},
			want: order.Submission{
				CompanyName:   order.DefaultCompany,
				OrderFormLink: order.DefaultLink,
				OrderDetails:  order.DefaultDetails,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, order.ParseForm(tt.form))
		})
	}
}

func TestSubmission_Validate(t *testing.T) {
	t.Parallel()

	valid := []string{"alice@example.com", "a@example.com;not-an-email", "first.last+tag@sub.example.org"}
	for _, v := range valid {
		sub := order.ParseForm(url.Values{"realemail": {v}})
		require.NoError(t, sub.Validate(), v)
	}

	invalid := []string{"", ";alice@example.com", "not-an-email", "alice@", "Alice <alice@example.com>", "alice@localhost"}
	for _, v := range invalid {
		sub := order.ParseForm(url.Values{"realemail": {v}})
		err := sub.Validate()
		require.Error(t, err, v)
		assert.ErrorIs(t, err, order.ErrInvalidEmail, v)
	}
}
