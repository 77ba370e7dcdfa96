package transcriber

import (
	"context"
	"io"

	"github.com/meetscribe/meetscribe/internal/decoder"
)

// Options tune one transcription call. None of them change the returned
// transcript; sink, timestamps and progress are side-channel only.
type Options struct {
	// Language selects the acoustic model ("en", "hi").
	Language string

	// Sink, when set, receives each recognized segment as a line the moment
	// it is finalized, so partial results survive an interrupt.
	Sink io.Writer

	// Timestamps prefixes sink lines with the segment start time.
	Timestamps bool

	// Progress enables the status line on stderr.
	Progress bool

	// ChunkBytes overrides the configured chunk size when > 0.
	ChunkBytes int
}

// Transcriber converts a prepared WAV file into a transcript string.
type Transcriber interface {
	Transcribe(ctx context.Context, wavPath string, opts Options) (string, error)
}

// SessionFactory opens one decoder session per transcription call.
type SessionFactory interface {
	NewSession(ctx context.Context, language string) (*decoder.Adapter, error)
}
