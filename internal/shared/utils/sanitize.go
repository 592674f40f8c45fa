package utils

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

var strictPolicy = bluemonday.StrictPolicy()

// maxSanitizePasses bounds how many layers of entity encoding are peeled off.
const maxSanitizePasses = 8

var angleBrackets = strings.NewReplacer("<", "", ">", "")

// SanitizeText strips every HTML element from s and returns NFC-normalized
// plain text, trimmed and cut to maxRunes runes (no limit when maxRunes <= 0).
// Entity-encoded markup is decoded before stripping, so "&lt;b&gt;" is
// removed like "<b>".
func SanitizeText(s string, maxRunes int) string {
	clean := stripMarkup(s)
	clean = strings.TrimSpace(norm.NFC.String(clean))
	if maxRunes > 0 && utf8.RuneCountInString(clean) > maxRunes {
		runes := []rune(clean)
		clean = strings.TrimSpace(string(runes[:maxRunes]))
	}
	return clean
}

// stripMarkup decodes and sanitizes until the text stops changing. Input that
// is still shifting after maxSanitizePasses loses its angle brackets.
func stripMarkup(s string) string {
	clean := s
	for i := 0; i < maxSanitizePasses; i++ {
		next := html.UnescapeString(strictPolicy.Sanitize(html.UnescapeString(clean)))
		if next == clean {
			return clean
		}
		clean = next
	}
	return angleBrackets.Replace(clean)
}
