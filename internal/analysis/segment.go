package analysis

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// normalizeWhitespace collapses every whitespace run to a single space
func normalizeWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// Sentences splits transcript text on sentence-final punctuation followed by
// whitespace, keeping the punctuation attached. It is idempotent: segmenting
// the space-joined rejoining of its own output reproduces the same list.
func Sentences(text string) []string {
	text = normalizeWhitespace(text)
	if text == "" {
		return nil
	}

	var out []string
	var b strings.Builder
	runes := []rune(text)

	for i, r := range runes {
		b.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && i+1 < len(runes) && runes[i+1] == ' ' {
			if s := strings.TrimSpace(b.String()); s != "" {
				out = append(out, s)
			}
			b.Reset()
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		out = append(out, s)
	}

	return out
}
