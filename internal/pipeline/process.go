package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/meetscribe/meetscribe/internal/summarizer"
	"github.com/meetscribe/meetscribe/internal/transcriber"
)

// Process runs the full chain for one recording and writes every artifact
// into outDir.
func (p *implPipeline) Process(ctx context.Context, inputPath, outDir string, opts Options) (*Artifacts, error) {
	wavPath, err := p.converter.Convert(ctx, inputPath, p.paths.Temp)
	if err != nil {
		return nil, fmt.Errorf("prepare audio: %w", err)
	}
	defer func() {
		if err := os.Remove(wavPath); err != nil && !os.IsNotExist(err) {
			p.logger.Warn(ctx, "Failed to remove temp audio %s: %v", wavPath, err)
		}
	}()

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	basename := stem(inputPath)

	// The live sink keeps partial transcripts on disk if the run is cut short.
	transcriptPath := filepath.Join(outDir, basename+"_transcript.txt")
	sink, err := os.Create(transcriptPath)
	if err != nil {
		return nil, fmt.Errorf("create transcript file: %w", err)
	}

	transcript, err := p.transcriber.Transcribe(ctx, wavPath, transcriber.Options{
		Language:   opts.Language,
		Sink:       sink,
		Timestamps: opts.Timestamps,
		Progress:   opts.Progress,
	})
	if cerr := sink.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("close transcript file: %w", cerr)
	}
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}
	p.logger.Info(ctx, "Transcript written to: %s", transcriptPath)

	if opts.Translate && opts.Language == "hi" && summarizer.IsHindi(transcript) {
		p.logger.Info(ctx, "Translating Hindi transcript to English...")
		transcript = p.translator.HindiToEnglish(ctx, transcript)
	}

	artifacts, err := p.ProcessTranscript(ctx, transcript, opts)
	if err != nil {
		return nil, err
	}

	if err := p.WriteArtifacts(ctx, outDir, basename, artifacts); err != nil {
		return nil, err
	}
	return artifacts, nil
}

// ProcessTranscript derives every text artifact from transcript text.
// A summarizer failure is logged and leaves Summary empty; the remaining
// artifacts are still produced.
func (p *implPipeline) ProcessTranscript(ctx context.Context, transcript string, opts Options) (*Artifacts, error) {
	a := &Artifacts{
		Transcript:  transcript,
		Highlights:  p.analyzer.Highlights(transcript),
		ActionItems: p.analyzer.ActionItems(transcript),
		Topics:      p.analyzer.Topics(transcript),
	}

	if !opts.SkipSummary {
		summary, err := p.summarizer.Summarize(ctx, transcript)
		if err != nil {
			p.logger.Error(ctx, "Summarization failed, continuing without summary: %v", err)
		} else {
			a.Summary = summary
		}
	}

	return a, nil
}

// WriteArtifacts persists artifacts as the per-recording text files plus a
// styled notes document.
func (p *implPipeline) WriteArtifacts(ctx context.Context, outDir, basename string, a *Artifacts) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	write := func(suffix, content string) error {
		if strings.TrimSpace(content) == "" {
			return nil
		}
		path := filepath.Join(outDir, basename+suffix)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		p.logger.Info(ctx, "Written: %s", path)
		return nil
	}

	if err := write("_summary.txt", a.Summary); err != nil {
		return err
	}
	if err := write("_highlights.txt", a.Highlights); err != nil {
		return err
	}
	if err := write("_action_items.txt", strings.Join(a.ActionItems, "\n")); err != nil {
		return err
	}
	if err := write("_topics.txt", strings.Join(a.Topics, "\n")); err != nil {
		return err
	}

	notesPath := filepath.Join(outDir, basename+"_notes.docx")
	notes := summarizer.Notes{
		Summary:     a.Summary,
		Highlights:  a.Highlights,
		ActionItems: a.ActionItems,
		Topics:      a.Topics,
	}
	if err := summarizer.WriteNotes(notesPath, basename, notes); err != nil {
		return fmt.Errorf("write notes: %w", err)
	}
	p.logger.Info(ctx, "Written: %s", notesPath)

	return nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
