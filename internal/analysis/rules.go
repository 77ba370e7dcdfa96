package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

// KeyDecisions is the fallback bucket for sentences that match an importance
// indicator but no category keyword. It exists from the start; empty buckets
// are filtered at render time.
const KeyDecisions = "Key Decisions & Actions"

// Category is one named keyword group. Declaration order is classification
// order: the first category whose keyword appears in a sentence wins.
type Category struct {
	Name     string
	Keywords []string
}

// defaultCategories mirror the business-metric keyword tables the pipeline
// ships with. They are data, editable through configuration.
var defaultCategories = []Category{
	{
		Name: "Financial Metrics",
		Keywords: []string{
			"revenue", "profit", "cost", "margin", "roi", "budget", "pricing", "price",
			"invoice", "mrr", "arr", "funding",
		},
	},
	{
		Name: "Growth & Business",
		Keywords: []string{
			"growth", "market", "sales", "expansion", "deal", "contract", "pipeline",
		},
	},
	{
		Name:     "Customer & Users",
		Keywords: []string{"customers", "users", "churn", "retention"},
	},
	{
		Name:     "Planning & Forecasting",
		Keywords: []string{"forecast"},
	},
	{
		Name:     "Operations & Team",
		Keywords: []string{"hiring", "headcount"},
	},
}

// importanceIndicators catch statements that matter even without a category
// keyword: decisions, obligations, deadlines, quantities, relative time.
var importanceIndicators = []string{
	`\b(?:decided|decision|agreed|agreement|approved|approval|announced|announcement)\b`,
	`\b(?:will|going to|plan to|need to|must|should)\b`,
	`\b(?:important|critical|key|major|significant|priority)\b`,
	`\b(?:deadline|due date|target|goal|objective)\b`,
	`\b\d+%|\$\d+|\d+\s*(?:million|billion|thousand|k|m|b)\b`,
	`\b(?:next week|next month|next quarter|by|before|after)\b`,
}

// actionKeywords drive the action-item extractor only.
var actionKeywords = []string{
	"will", "should", "need to", "have to", "required", "assigned",
	"responsible", "deadline", "task", "going to", "must", "plan to",
	"promised", "commit", "action", "deliver", "complete", "finish",
	"do", "implement",
}

var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "an", "and", "are", "as", "at", "be", "by", "for", "from",
		"has", "he", "in", "is", "it", "its", "of", "on", "that", "the",
		"to", "was", "will", "with", "this", "but", "they", "have",
		"had", "what", "said", "each", "which", "their", "time", "if",
		"up", "out", "many", "then", "them", "these", "so", "some", "her",
		"would", "make", "like", "into", "him", "two", "more",
		"very", "after", "words", "long", "than", "first", "been", "call",
		"who", "oil", "sit", "now", "find", "down", "day", "did", "get",
		"come", "made", "may", "part", "i", "we", "you", "she", "do",
		"can", "could", "should", "might", "must",
	} {
		stopwords[w] = struct{}{}
	}
}

// Rules holds the compiled pattern tables shared by the extractors.
type Rules struct {
	Categories []Category

	keywordPattern    *regexp.Regexp
	importancePattern *regexp.Regexp
	actionPattern     *regexp.Regexp
}

// DefaultRules compiles the built-in tables
func DefaultRules() *Rules {
	r, err := NewRules(defaultCategories)
	if err != nil {
		// The built-in tables are static; a compile failure is a programming error
		panic(err)
	}
	return r
}

// NewRules compiles pattern tables from the given categories. Pass overrides
// loaded from configuration, or defaultCategories.
func NewRules(categories []Category) (*Rules, error) {
	var all []string
	for _, cat := range categories {
		for _, kw := range cat.Keywords {
			all = append(all, regexp.QuoteMeta(kw))
		}
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("no highlight keywords configured")
	}

	keywordPattern, err := regexp.Compile(`(?i)\b(?:` + strings.Join(all, "|") + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("compile keyword pattern: %w", err)
	}

	importancePattern, err := regexp.Compile(`(?i)` + strings.Join(importanceIndicators, "|"))
	if err != nil {
		return nil, fmt.Errorf("compile importance pattern: %w", err)
	}

	var actions []string
	for _, kw := range actionKeywords {
		actions = append(actions, `\b`+regexp.QuoteMeta(kw)+`\b`)
	}
	actionPattern, err := regexp.Compile(`(?i)` + strings.Join(actions, "|"))
	if err != nil {
		return nil, fmt.Errorf("compile action pattern: %w", err)
	}

	return &Rules{
		Categories:        categories,
		keywordPattern:    keywordPattern,
		importancePattern: importancePattern,
		actionPattern:     actionPattern,
	}, nil
}
