package validator

import (
	"net/mail"
	"strings"
)

const (
	maxEmailLength     = 254
	maxLocalPartLength = 64
	maxLabelLength     = 63
)

// IsEmail reports whether value is a bare ASCII addr-spec such as
// "user@example.com". Display names, comments, angle brackets and
// surrounding whitespace are rejected. The domain must be a hostname with
// at least two labels; each label is 1-63 letters, digits or hyphens and
// does not start or end with a hyphen.
func IsEmail(value string) bool {
	if value == "" || len(value) > maxEmailLength {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Name != "" || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" || len(local) > maxLocalPartLength || !isASCII(local) {
		return false
	}

	if !strings.Contains(domain, ".") {
		return false
	}
	for label := range strings.SplitSeq(domain, ".") {
		if !isHostLabel(label) {
			return false
		}
	}

	return true
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func isHostLabel(label string) bool {
	if label == "" || len(label) > maxLabelLength {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-':
		default:
			return false
		}
	}
	return true
}

// ValidEmail returns a rule that checks value with IsEmail.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsEmail(value) },
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// Required returns a rule that fails for empty or whitespace-only values.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{
			Field:   field,
			Message: "is required",
		},
	}
}
