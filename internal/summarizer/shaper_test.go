package summarizer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/meetscribe/meetscribe/internal/config"
	"github.com/meetscribe/meetscribe/internal/logger"
)

type countingModel struct {
	calls  int
	params []Params
	out    func(text string, p Params) (string, error)
}

func (m *countingModel) Summarize(_ context.Context, text string, p Params) (string, error) {
	m.calls++
	m.params = append(m.params, p)
	if m.out != nil {
		return m.out(text, p)
	}
	return "summary of " + text[:min(10, len(text))], nil
}

func newTestShaper(m Model) *Shaper {
	cfg := config.SummarizerConfig{MinChars: 80, ChunkChars: 3000}
	return NewShaper(m, cfg, logger.New("error"))
}

func TestShaperEmptyInput(t *testing.T) {
	m := &countingModel{}
	s := newTestShaper(m)

	got, err := s.Summarize(context.Background(), "   \n ")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != "" {
		t.Errorf("Summarize() = %q, want empty", got)
	}
	if m.calls != 0 {
		t.Errorf("model called %d times, want 0", m.calls)
	}
}

func TestShaperShortInputBypassesModel(t *testing.T) {
	m := &countingModel{}
	s := newTestShaper(m)

	in := "  Quick sync, nothing to report.  "
	got, err := s.Summarize(context.Background(), in)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != strings.TrimSpace(in) {
		t.Errorf("Summarize() = %q, want trimmed input unchanged", got)
	}
	if m.calls != 0 {
		t.Errorf("model called %d times, want 0 for input under the minimum length", m.calls)
	}
}

func TestShaperSingleChunk(t *testing.T) {
	m := &countingModel{out: func(string, Params) (string, error) {
		return "  condensed  ", nil
	}}
	s := newTestShaper(m)

	got, err := s.Summarize(context.Background(), strings.Repeat("the team discussed the roadmap ", 10))
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != "condensed" {
		t.Errorf("Summarize() = %q, want %q", got, "condensed")
	}
	if m.calls != 1 {
		t.Errorf("model called %d times, want 1", m.calls)
	}
	p := m.params[0]
	if p.MaxLength != 140 || p.MinLength != 30 || p.NoRepeatNgramSize != 3 || p.DoSample {
		t.Errorf("chunk params = %+v, want {140 30 3 false}", p)
	}
}

func TestShaperMultiChunkResummarizes(t *testing.T) {
	m := &countingModel{out: func(text string, p Params) (string, error) {
		if p.MaxLength == 160 {
			return "final combined summary", nil
		}
		return "chunk summary", nil
	}}
	s := newTestShaper(m)

	// 7000 chars splits into 3 chunks of 3000/3000/1000
	got, err := s.Summarize(context.Background(), strings.Repeat("a", 7000))
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != "final combined summary" {
		t.Errorf("Summarize() = %q, want the re-summarized text", got)
	}
	if m.calls != 4 {
		t.Fatalf("model called %d times, want 3 chunks + 1 combine pass", m.calls)
	}
	last := m.params[len(m.params)-1]
	if last.MaxLength != 160 || last.MinLength != 40 {
		t.Errorf("combine params = %+v, want {MaxLength:160 MinLength:40}", last)
	}
}

func TestShaperWrapsModelErrors(t *testing.T) {
	modelErr := errors.New("backend unavailable")
	m := &countingModel{out: func(string, Params) (string, error) {
		return "", modelErr
	}}
	s := newTestShaper(m)

	_, err := s.Summarize(context.Background(), strings.Repeat("words about the budget ", 20))
	if err == nil {
		t.Fatal("Summarize() error = nil, want wrapped model error")
	}
	var sErr *Error
	if !errors.As(err, &sErr) {
		t.Errorf("error type = %T, want *Error", err)
	}
	if !errors.Is(err, modelErr) {
		t.Error("wrapped error should unwrap to the model error")
	}
}
