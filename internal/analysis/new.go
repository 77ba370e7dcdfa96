package analysis

// Analyzer runs the rule-based extractors over a transcript. All of them are
// total over any string input; empty input yields empty output.
type Analyzer struct {
	rules      *Rules
	maxTopics  int
	maxActions int
}

// New creates an Analyzer with compiled rules and output caps
func New(rules *Rules, maxTopics, maxActions int) *Analyzer {
	if maxTopics <= 0 {
		maxTopics = 5
	}
	if maxActions <= 0 {
		maxActions = 20
	}
	return &Analyzer{
		rules:      rules,
		maxTopics:  maxTopics,
		maxActions: maxActions,
	}
}
