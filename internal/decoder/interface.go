package decoder

import (
	"context"
	"fmt"
)

// WordTiming is word-level timing attached to a recognized segment.
type WordTiming struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Conf  float64 `json:"conf"`
}

// Result is one finalized recognizer output.
type Result struct {
	Text  string       `json:"text"`
	Words []WordTiming `json:"result"`
}

// Engine is a raw incremental speech recognizer session. Accept feeds one PCM
// chunk; boundary is true when the recognizer finalized an utterance and raw
// holds its JSON payload. Final flushes any pending partial utterance.
// A session belongs to exactly one transcription call.
type Engine interface {
	Accept(ctx context.Context, chunk []byte) (raw []byte, boundary bool, err error)
	Final(ctx context.Context) ([]byte, error)
	Close() error
}

// ModelNotFoundError means the acoustic model bundle is missing on disk.
type ModelNotFoundError struct {
	Language string
	Path     string
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("speech model for language %q not found at %s; download a model bundle and point decoder.model_paths at it",
		e.Language, e.Path)
}
