package sanitizer

import "strings"

// urlChars lists the ASCII punctuation kept by SanitizeURL in addition
// to letters and digits.
const urlChars = "$-_.+!*'(),{}|\\^~[]`<>#%\";/?:@&="

// SanitizeURL removes every byte that is not an ASCII letter, digit or one
// of the characters allowed in a URL. Whitespace, control characters and
// non-ASCII bytes are dropped. The result is not validated as a URL.
func SanitizeURL(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case strings.IndexByte(urlChars, c) >= 0:
			b.WriteByte(c)
		}
	}
	return b.String()
}
