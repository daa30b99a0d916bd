// Package sanitizer normalizes untrusted form input before it is embedded
// in generated messages.
package sanitizer

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#039;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeHTML replaces the five HTML special characters with entities,
// quotes included, using the numeric form &#039; for the apostrophe.
// Existing entities are escaped again. Invalid UTF-8 sequences are
// replaced with U+FFFD first.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(strings.ToValidUTF8(s, "\uFFFD"))
}

var lineBreaks = strings.NewReplacer(
	"<br>", "\n",
	"<br/>", "\n",
	"<br />", "\n",
)

// BreaksToNewlines converts the literal tags <br>, <br/> and <br /> to "\n".
// Matching is exact and case-sensitive; other spellings are left untouched.
func BreaksToNewlines(s string) string {
	return lineBreaks.Replace(s)
}
