package resume

import (
	"regexp"
	"strings"
	"unicode"
)

var reWhitespace = regexp.MustCompile(`\s+`)

// Clean collapses whitespace runs to single spaces, drops the U+F0B7 bullet
// artifact common in exported PDFs, and trims the result.
func Clean(text string) string {
	text = strings.ReplaceAll(text, "\uf0b7", " ")
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = reWhitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Sentences splits cleaned text on sentence boundaries: a '.', '!' or '?'
// followed by whitespace. Empty fragments are discarded.
func Sentences(text string) []string {
	var out []string
	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '.', '!', '?':
			if i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
				if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
					out = append(out, s)
				}
				start = i + 1
			}
		}
	}
	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		out = append(out, s)
	}
	return out
}
