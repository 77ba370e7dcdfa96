package analysis

import (
	"fmt"
	"strings"
)

const (
	minHighlightSentence = 10
	maxHighlightLen      = 500
	highlightDedupLen    = 100
	contextNeighborMin   = 15
	shortNeighborMax     = 100
)

// Highlights extracts notable statements with surrounding context and
// renders them as a categorized report. A sentence lands in exactly one
// bucket: the first category whose keyword appears in it, or the
// Key Decisions & Actions bucket when only an importance indicator matched.
func (a *Analyzer) Highlights(transcript string) string {
	if strings.TrimSpace(transcript) == "" {
		return ""
	}

	sentences := Sentences(transcript)

	buckets := make(map[string][]string)
	seen := make(map[string]struct{})

	for i, sentence := range sentences {
		if len(sentence) < minHighlightSentence {
			continue
		}

		hasKeyword := a.rules.keywordPattern.MatchString(sentence)
		hasImportance := a.rules.importancePattern.MatchString(sentence)
		if !hasKeyword && !hasImportance {
			continue
		}

		// Context window: pull in a neighbor when it is short (likely
		// connective) or itself notable
		var parts []string
		if i > 0 && len(sentences[i-1]) > contextNeighborMin && a.relevantNeighbor(sentences[i-1]) {
			parts = append(parts, sentences[i-1])
		}
		parts = append(parts, sentence)
		if i < len(sentences)-1 && len(sentences[i+1]) > contextNeighborMin && a.relevantNeighbor(sentences[i+1]) {
			parts = append(parts, sentences[i+1])
		}

		text := normalizeWhitespace(strings.Join(parts, " "))

		// Oversized context dilutes the highlight; fall back to the sentence
		if len(text) > maxHighlightLen {
			text = sentence
		}

		key := dedupKey(text, highlightDedupLen)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		// Classification looks at the original sentence, not the context
		lower := strings.ToLower(sentence)
		assigned := false
		for _, cat := range a.rules.Categories {
			if containsAnyKeyword(lower, cat.Keywords) {
				buckets[cat.Name] = append(buckets[cat.Name], ensureTerminalPunctuation(text))
				assigned = true
				break
			}
		}
		if !assigned && hasImportance {
			buckets[KeyDecisions] = append(buckets[KeyDecisions], ensureTerminalPunctuation(text))
		}
	}

	return a.renderHighlights(buckets)
}

func (a *Analyzer) relevantNeighbor(s string) bool {
	return len(s) < shortNeighborMax ||
		a.rules.keywordPattern.MatchString(s) ||
		a.rules.importancePattern.MatchString(s)
}

func (a *Analyzer) renderHighlights(buckets map[string][]string) string {
	rule := strings.Repeat("=", 70)
	sep := strings.Repeat("-", 70)

	var lines []string
	lines = append(lines, rule, "MEETING HIGHLIGHTS", rule, "")

	total := 0

	// Key decisions always print first
	if items := buckets[KeyDecisions]; len(items) > 0 {
		lines = append(lines, strings.ToUpper(KeyDecisions), sep)
		for i, item := range items {
			lines = append(lines, fmt.Sprintf("  %d. %s", i+1, item))
		}
		lines = append(lines, "")
		total += len(items)
	}

	for _, cat := range a.rules.Categories {
		items := buckets[cat.Name]
		if len(items) == 0 {
			continue
		}
		lines = append(lines, strings.ToUpper(cat.Name), sep)
		for i, item := range items {
			lines = append(lines, fmt.Sprintf("  %d. %s", i+1, item))
		}
		lines = append(lines, "")
		total += len(items)
	}

	if total == 0 {
		lines = append(lines, "No highlights found matching key business metrics.")
		return strings.Join(lines, "\n")
	}

	lines = append(lines, rule, fmt.Sprintf("Total Highlights: %d", total), rule)
	return strings.Join(lines, "\n")
}

func containsAnyKeyword(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func ensureTerminalPunctuation(s string) string {
	if s == "" {
		return s
	}
	switch s[len(s)-1] {
	case '.', '!', '?':
		return s
	}
	return s + "."
}

func dedupKey(s string, n int) string {
	s = strings.ToLower(s)
	if len(s) > n {
		s = s[:n]
	}
	return s
}
