package decoder

import (
	"context"
	"fmt"
	"strings"

	"github.com/meetscribe/meetscribe/internal/logger"
)

// Adapter drives an Engine over a chunk stream and accumulates every
// non-empty recognized segment in order. The space-joined accumulation is
// the transcript.
type Adapter struct {
	engine Engine
	logger logger.Logger
	parts  []string
}

// NewAdapter creates an Adapter around a fresh engine session
func NewAdapter(eng Engine, log logger.Logger) *Adapter {
	return &Adapter{
		engine: eng,
		logger: log,
	}
}

// Feed pushes one chunk into the recognizer. When the recognizer finalized
// an utterance with non-empty text, the parsed result is returned with
// ok=true and the text is appended to the transcript. Malformed recognizer
// payloads contribute nothing and are not fatal; engine I/O errors are.
func (a *Adapter) Feed(ctx context.Context, chunk []byte) (Result, bool, error) {
	raw, boundary, err := a.engine.Accept(ctx, chunk)
	if err != nil {
		return Result{}, false, fmt.Errorf("decoder accept: %w", err)
	}
	if !boundary {
		return Result{}, false, nil
	}
	return a.collect(ctx, raw), true, nil
}

// Drain flushes the recognizer's pending partial utterance after the last
// chunk was fed.
func (a *Adapter) Drain(ctx context.Context) (Result, error) {
	raw, err := a.engine.Final(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("decoder final: %w", err)
	}
	return a.collect(ctx, raw), nil
}

// Transcript returns the space-joined concatenation of every non-empty
// segment collected so far, in feed order.
func (a *Adapter) Transcript() string {
	return strings.Join(a.parts, " ")
}

// Close releases the underlying engine session
func (a *Adapter) Close() error {
	return a.engine.Close()
}

func (a *Adapter) collect(ctx context.Context, raw []byte) Result {
	res, ok := ParseResult(raw)
	if !ok {
		a.logger.Warn(ctx, "Malformed decoder result skipped: %q", truncate(string(raw), 80))
		return Result{}
	}
	if res.Text != "" {
		a.parts = append(a.parts, res.Text)
	}
	return res
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
