package analysis

import (
	"regexp"
	"sort"
	"strings"
)

const minTopicWordLen = 4

var punctuationRe = regexp.MustCompile(`[^\w\s]`)

// Topics returns the most frequent meaningful words, capitalized, count
// descending. Ties keep first-encountered order: counting tracks words in
// the order they first appear and the sort is stable over that order.
func (a *Analyzer) Topics(transcript string) []string {
	if strings.TrimSpace(transcript) == "" {
		return nil
	}

	text := strings.ToLower(transcript)
	text = punctuationRe.ReplaceAllString(text, " ")
	text = normalizeWhitespace(text)

	counts := make(map[string]int)
	var order []string

	for _, word := range strings.Split(text, " ") {
		if len(word) < minTopicWordLen {
			continue
		}
		if _, stop := stopwords[word]; stop {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	n := a.maxTopics
	if n > len(order) {
		n = len(order)
	}

	topics := make([]string, 0, n)
	for _, word := range order[:n] {
		topics = append(topics, capitalizeFirst(word))
	}
	return topics
}
