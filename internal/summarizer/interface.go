package summarizer

import "context"

// Params are the generation bounds passed to the external summarization
// model on every call.
type Params struct {
	MaxLength         int
	MinLength         int
	NoRepeatNgramSize int
	DoSample          bool
}

// Model is the external abstractive summarizer, stateless per call.
type Model interface {
	Summarize(ctx context.Context, text string, p Params) (string, error)
}

// Error wraps summarization failures so callers can distinguish them from
// transcription errors and still deliver a transcript without a summary.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return "summarization failed: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
