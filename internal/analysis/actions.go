package analysis

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	minActionSentence = 15
	actionDedupLen    = 50
)

var (
	leadingNonWordRe  = regexp.MustCompile(`^[^\w]+`)
	trailingNonWordRe = regexp.MustCompile(`[^\w]+$`)
)

// ActionItems extracts sentences carrying action-oriented language, cleaned
// and bulleted, in transcript order. Output is capped; truncation is
// first-come, not by any relevance score.
func (a *Analyzer) ActionItems(transcript string) []string {
	if strings.TrimSpace(transcript) == "" {
		return nil
	}

	var items []string
	seen := make(map[string]struct{})

	for _, sentence := range Sentences(transcript) {
		if len(sentence) < minActionSentence {
			continue
		}
		if !a.rules.actionPattern.MatchString(sentence) {
			continue
		}

		cleaned := leadingNonWordRe.ReplaceAllString(sentence, "")
		cleaned = trailingNonWordRe.ReplaceAllString(cleaned, "")
		if cleaned == "" {
			continue
		}
		cleaned = capitalizeFirst(cleaned)

		key := dedupKey(cleaned, actionDedupLen)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		items = append(items, "- "+cleaned)
		if len(items) >= a.maxActions {
			break
		}
	}

	return items
}

func capitalizeFirst(s string) string {
	r := []rune(s)
	if len(r) == 0 || unicode.IsUpper(r[0]) {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
