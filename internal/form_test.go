package internal

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseURLEncoded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want url.Values
	}{
		{"empty body", "", url.Values{}},
		{"plain pairs", "a=1&b=2", url.Values{"a": {"1"}, "b": {"2"}}},
		{"raw semicolon stays in value", "realemail=a@example.com;b@example.com&x=1",
			url.Values{"realemail": {"a@example.com;b@example.com"}, "x": {"1"}}},
		{"escapes and plus", "company_name=Acme+%26+Co%21", url.Values{"company_name": {"Acme & Co!"}}},
		{"malformed escape kept", "company_name=50%off&d=100%", url.Values{"company_name": {"50%off"}, "d": {"100%"}}},
		{"truncated escape kept", "v=%4", url.Values{"v": {"%4"}}},
		{"name without value", "flag&empty=", url.Values{"flag": {""}, "empty": {""}}},
		{"empty names dropped", "=x&&a=1", url.Values{"a": {"1"}}},
		{"repeated names keep order", "k=1&k=2", url.Values{"k": {"1", "2"}}},
		{"value containing equals", "u=https://e.com/?a=b", url.Values{"u": {"https://e.com/?a=b"}}},
		{"escaped name", "order%5Fdetails=x", url.Values{"order_details": {"x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parseURLEncoded(tt.body))
		})
	}
}
