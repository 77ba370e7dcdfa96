package summarizer

import (
	"context"
	"strings"

	"github.com/meetscribe/meetscribe/internal/config"
	"github.com/meetscribe/meetscribe/internal/logger"
)

// Shaper fits arbitrary-length text into the model's bounded input window:
// raw character-cut chunks, one model call per chunk, and one extra pass
// over the joined chunk summaries when there was more than one chunk.
type Shaper struct {
	model      Model
	minChars   int
	chunkChars int
	logger     logger.Logger
}

// NewShaper creates a Shaper around a summarization model
func NewShaper(model Model, cfg config.SummarizerConfig, log logger.Logger) *Shaper {
	return &Shaper{
		model:      model,
		minChars:   cfg.MinChars,
		chunkChars: cfg.ChunkChars,
		logger:     log,
	}
}

// Summarize condenses text. Inputs below the minimum length are returned
// trimmed and unchanged without touching the model.
func (s *Shaper) Summarize(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}
	if len(text) < s.minChars {
		return text, nil
	}

	var summaries []string
	for start := 0; start < len(text); start += s.chunkChars {
		end := start + s.chunkChars
		if end > len(text) {
			end = len(text)
		}

		out, err := s.model.Summarize(ctx, text[start:end], Params{
			MaxLength:         140,
			MinLength:         30,
			NoRepeatNgramSize: 3,
		})
		if err != nil {
			return "", &Error{Err: err}
		}
		if out = strings.TrimSpace(out); out != "" {
			summaries = append(summaries, out)
		}
	}

	if len(summaries) > 1 {
		s.logger.Debug(ctx, "Re-summarizing %d chunk summaries", len(summaries))
		out, err := s.model.Summarize(ctx, strings.Join(summaries, "\n"), Params{
			MaxLength: 160,
			MinLength: 40,
		})
		if err != nil {
			return "", &Error{Err: err}
		}
		return strings.TrimSpace(out), nil
	}

	if len(summaries) == 1 {
		return summaries[0], nil
	}
	return "", nil
}
