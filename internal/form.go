package internal

import (
	"net/url"
	"strings"
)

// parseURLEncoded decodes an application/x-www-form-urlencoded body.
// Pairs are split on '&' only, so a raw ';' stays inside its value.
// '+' decodes to a space and a malformed percent escape is kept as is.
// Pairs with an empty name are dropped; repeated names keep every value
// in body order.
func parseURLEncoded(body string) url.Values {
	vals := url.Values{}
	for pair := range strings.SplitSeq(body, "&") {
		if pair == "" {
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		name = unescapeLenient(name)
		if name == "" {
			continue
		}
		vals[name] = append(vals[name], unescapeLenient(value))
	}
	return vals
}

func unescapeLenient(s string) string {
	if !strings.ContainsAny(s, "%+") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case c <= '9':
		return c - '0'
	case c <= 'F':
		return c - 'A' + 10
	default:
		return c - 'a' + 10
	}
}
