package analysis

import (
	"reflect"
	"strings"
	"testing"
)

func TestTopicsEmptyInput(t *testing.T) {
	a := newTestAnalyzer()

	if got := a.Topics(""); len(got) != 0 {
		t.Errorf("Topics(\"\") = %v, want empty", got)
	}
	if got := a.Topics("  \n "); len(got) != 0 {
		t.Errorf("Topics(whitespace) = %v, want empty", got)
	}
}

func TestTopicsFrequencyRanking(t *testing.T) {
	a := newTestAnalyzer()

	transcript := "kubernetes kubernetes kubernetes deployment deployment monitoring"
	got := a.Topics(transcript)

	want := []string{"Kubernetes", "Deployment", "Monitoring"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Topics() = %v, want %v", got, want)
	}
}

func TestTopicsTieStability(t *testing.T) {
	a := newTestAnalyzer()

	// Equal counts keep first-encountered order
	transcript := "alpha beta alpha beta gamma"
	got := a.Topics(transcript)

	want := []string{"Alpha", "Beta", "Gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Topics() = %v, want %v", got, want)
	}
}

func TestTopicsFiltersStopwordsAndShortWords(t *testing.T) {
	a := newTestAnalyzer()

	got := a.Topics("the and with cat dog was that this from")
	if len(got) != 0 {
		t.Errorf("Topics() = %v, want empty after stopword/length filtering", got)
	}
}

func TestTopicsStripsPunctuation(t *testing.T) {
	a := newTestAnalyzer()

	got := a.Topics("migration, migration! migration? database... database")
	want := []string{"Migration", "Database"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Topics() = %v, want %v", got, want)
	}
}

func TestTopicsCapped(t *testing.T) {
	a := New(DefaultRules(), 2, 20)

	got := a.Topics(strings.Repeat("alpha ", 3) + strings.Repeat("beta ", 2) + "gamma delta epsilon")
	want := []string{"Alpha", "Beta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Topics() = %v, want %v", got, want)
	}
}
