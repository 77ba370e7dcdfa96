package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/meetscribe/meetscribe/internal/analysis"
	"github.com/meetscribe/meetscribe/internal/config"
	"github.com/meetscribe/meetscribe/internal/logger"
)

type stubSummarizer struct {
	calls int
	out   string
	err   error
}

func (s *stubSummarizer) Summarize(_ context.Context, text string) (string, error) {
	s.calls++
	return s.out, s.err
}

type stubTranslator struct{}

func (stubTranslator) HindiToEnglish(_ context.Context, text string) string {
	return text
}

func newTestPipeline(s Summarizer) *implPipeline {
	analyzer := analysis.New(analysis.DefaultRules(), 5, 20)
	return &implPipeline{
		analyzer:   analyzer,
		summarizer: s,
		translator: stubTranslator{},
		paths:      config.PathsConfig{Temp: os.TempDir()},
		logger:     logger.New("error"),
	}
}

const sampleTranscript = "Our revenue grew by 20% this quarter. " +
	"We need to finish the migration plan by Friday. " +
	"The weather was nice."

func TestProcessTranscriptProducesAllArtifacts(t *testing.T) {
	s := &stubSummarizer{out: "quarterly revenue and migration planning"}
	p := newTestPipeline(s)

	got, err := p.ProcessTranscript(context.Background(), sampleTranscript, Options{})
	if err != nil {
		t.Fatalf("ProcessTranscript() error = %v", err)
	}

	if got.Transcript != sampleTranscript {
		t.Error("transcript should pass through unchanged")
	}
	if got.Summary != "quarterly revenue and migration planning" {
		t.Errorf("Summary = %q", got.Summary)
	}
	if !strings.Contains(got.Highlights, "FINANCIAL METRICS") {
		t.Errorf("highlights missing expected category:\n%s", got.Highlights)
	}
	if len(got.ActionItems) == 0 {
		t.Error("expected at least one action item")
	}
	if len(got.Topics) == 0 {
		t.Error("expected at least one topic")
	}
}

func TestProcessTranscriptSkipSummary(t *testing.T) {
	s := &stubSummarizer{out: "should not appear"}
	p := newTestPipeline(s)

	got, err := p.ProcessTranscript(context.Background(), sampleTranscript, Options{SkipSummary: true})
	if err != nil {
		t.Fatalf("ProcessTranscript() error = %v", err)
	}
	if got.Summary != "" {
		t.Errorf("Summary = %q, want empty when skipped", got.Summary)
	}
	if s.calls != 0 {
		t.Errorf("summarizer called %d times, want 0", s.calls)
	}
}

func TestProcessTranscriptSummarizerFailureIsPartialSuccess(t *testing.T) {
	s := &stubSummarizer{err: errors.New("quota exhausted")}
	p := newTestPipeline(s)

	got, err := p.ProcessTranscript(context.Background(), sampleTranscript, Options{})
	if err != nil {
		t.Fatalf("ProcessTranscript() error = %v, want success without summary", err)
	}
	if got.Summary != "" {
		t.Errorf("Summary = %q, want empty after failure", got.Summary)
	}
	if !strings.Contains(got.Highlights, "Total Highlights") {
		t.Error("highlights should still be produced")
	}
	if len(got.ActionItems) == 0 {
		t.Error("action items should still be produced")
	}
}

func TestProcessTranscriptEmptyInput(t *testing.T) {
	s := &stubSummarizer{}
	p := newTestPipeline(s)

	got, err := p.ProcessTranscript(context.Background(), "", Options{SkipSummary: true})
	if err != nil {
		t.Fatalf("ProcessTranscript() error = %v", err)
	}
	if len(got.ActionItems) != 0 || len(got.Topics) != 0 {
		t.Error("empty transcript should yield empty collections")
	}
	if got.Highlights != "" {
		t.Errorf("empty transcript highlights = %q, want empty", got.Highlights)
	}
}

func TestWriteArtifacts(t *testing.T) {
	p := newTestPipeline(&stubSummarizer{})
	dir := t.TempDir()

	a := &Artifacts{
		Transcript:  sampleTranscript,
		Summary:     "a summary",
		Highlights:  "MEETING HIGHLIGHTS\nTotal Highlights: 1",
		ActionItems: []string{"- Finish the migration plan"},
		Topics:      []string{"Migration", "Revenue"},
	}

	if err := p.WriteArtifacts(context.Background(), dir, "standup", a); err != nil {
		t.Fatalf("WriteArtifacts() error = %v", err)
	}

	for _, name := range []string{
		"standup_summary.txt",
		"standup_highlights.txt",
		"standup_action_items.txt",
		"standup_topics.txt",
		"standup_notes.docx",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "standup_topics.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Migration\nRevenue" {
		t.Errorf("topics file = %q", data)
	}
}

func TestWriteArtifactsSkipsEmptyFiles(t *testing.T) {
	p := newTestPipeline(&stubSummarizer{})
	dir := t.TempDir()

	a := &Artifacts{Transcript: "short", Highlights: "No highlights found matching key business metrics."}
	if err := p.WriteArtifacts(context.Background(), dir, "brief", a); err != nil {
		t.Fatalf("WriteArtifacts() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "brief_summary.txt")); !os.IsNotExist(err) {
		t.Error("empty summary should not produce a file")
	}
	if _, err := os.Stat(filepath.Join(dir, "brief_action_items.txt")); !os.IsNotExist(err) {
		t.Error("empty action items should not produce a file")
	}
}
