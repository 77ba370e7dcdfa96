package analysis

import (
	"reflect"
	"strings"
	"testing"
)

func TestSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "basic split",
			text: "First point. Second point! Third point?",
			want: []string{"First point.", "Second point!", "Third point?"},
		},
		{
			name: "no terminal punctuation on last sentence",
			text: "We met today. Budget was discussed",
			want: []string{"We met today.", "Budget was discussed"},
		},
		{
			name: "whitespace runs collapsed",
			text: "One  sentence.\n\nAnother\tsentence.",
			want: []string{"One sentence.", "Another sentence."},
		},
		{
			name: "punctuation without following space does not split",
			text: "Version 1.5 shipped today. It works.",
			want: []string{"Version 1.5 shipped today.", "It works."},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "whitespace only",
			text: "   \n\t  ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sentences(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sentences() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSentencesIdempotent(t *testing.T) {
	transcripts := []string{
		"We decided to move forward. The budget is approved! Any questions?",
		"single sentence without punctuation",
		"Lots   of\nwhitespace.   Everywhere!  ",
		"",
	}

	for _, text := range transcripts {
		first := Sentences(text)
		rejoined := strings.Join(first, " ")
		second := Sentences(rejoined)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("re-segmenting changed the result for %q: %q vs %q", text, first, second)
		}
	}
}
