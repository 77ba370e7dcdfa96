package pipeline

import (
	"context"
)

// Artifacts are the text products of one processed recording.
type Artifacts struct {
	Transcript  string
	Summary     string
	Highlights  string
	ActionItems []string
	Topics      []string
}

// Options control one pipeline run.
type Options struct {
	// Language selects the acoustic model ("en", "hi").
	Language string

	// Timestamps prefixes live transcript lines with segment start times.
	Timestamps bool

	// Progress enables the transcription status line.
	Progress bool

	// SkipSummary leaves Artifacts.Summary empty without calling the model.
	SkipSummary bool

	// Translate renders a Hindi transcript into English before analysis.
	// Ignored unless Language is "hi".
	Translate bool
}

// Pipeline turns a recording into its full set of text artifacts.
type Pipeline interface {
	// Process runs the whole chain: convert, transcribe, analyze, write.
	Process(ctx context.Context, inputPath, outDir string, opts Options) (*Artifacts, error)

	// ProcessTranscript runs analysis and summarization on existing
	// transcript text, skipping audio handling.
	ProcessTranscript(ctx context.Context, transcript string, opts Options) (*Artifacts, error)

	// WriteArtifacts persists artifacts into outDir under the given basename.
	WriteArtifacts(ctx context.Context, outDir, basename string, a *Artifacts) error
}

// Converter prepares a recording as a decoder-ready WAV file.
type Converter interface {
	Convert(ctx context.Context, inputPath, outDir string) (string, error)
}

// Summarizer condenses transcript text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Translator renders Hindi transcript text into English.
type Translator interface {
	HindiToEnglish(ctx context.Context, text string) string
}
