package summarizer

import (
	"context"
	"strings"
	"unicode"

	"github.com/meetscribe/meetscribe/internal/logger"
)

const translateChunkChars = 500

// TranslationModel renders text from Hindi to English.
type TranslationModel interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Translator splits long Hindi transcripts into sentence-aligned chunks
// before handing them to the translation model. Chunks that fail to
// translate are kept untranslated so the transcript stays complete.
type Translator struct {
	model  TranslationModel
	logger logger.Logger
}

// NewTranslator creates a Translator around a translation model.
func NewTranslator(model TranslationModel, log logger.Logger) *Translator {
	return &Translator{model: model, logger: log}
}

// HindiToEnglish translates text chunk by chunk.
func (t *Translator) HindiToEnglish(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	chunks := splitChunks(text, translateChunkChars)
	translated := make([]string, 0, len(chunks))

	for i, chunk := range chunks {
		out, err := t.model.Translate(ctx, chunk)
		if err != nil {
			t.logger.Warn(ctx, "Translating chunk %d/%d failed, keeping original: %v", i+1, len(chunks), err)
			translated = append(translated, chunk)
			continue
		}
		if out = strings.TrimSpace(out); out != "" {
			translated = append(translated, out)
			t.logger.Debug(ctx, "Translated chunk %d/%d", i+1, len(chunks))
		}
	}

	return strings.TrimSpace(strings.Join(translated, " "))
}

// splitChunks groups sentences until the next one would push the chunk
// past limit characters.
func splitChunks(text string, limit int) []string {
	var chunks []string
	var current strings.Builder

	for _, sentence := range strings.Split(text, ". ") {
		if current.Len()+len(sentence) < limit {
			current.WriteString(sentence)
			current.WriteString(". ")
			continue
		}
		if s := strings.TrimSpace(current.String()); s != "" {
			chunks = append(chunks, s)
		}
		current.Reset()
		current.WriteString(sentence)
		current.WriteString(". ")
	}

	if s := strings.TrimSpace(current.String()); s != "" {
		chunks = append(chunks, s)
	}
	return chunks
}

// IsHindi reports whether more than 30% of the text's word characters
// fall in the Devanagari block.
func IsHindi(text string) bool {
	var hindi, total int
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			hindi++
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			total++
		}
	}
	if total == 0 {
		return false
	}
	return float64(hindi)/float64(total) > 0.3
}
