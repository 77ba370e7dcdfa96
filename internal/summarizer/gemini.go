package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/meetscribe/meetscribe/internal/logger"
)

const summaryPrompt = `Summarize the following meeting transcript excerpt in %d to %d words.
Keep concrete facts, numbers, decisions and owners. Do not repeat any phrase of %d or more words.
Write plain prose with no preamble and no markdown.

Transcript:
---
%s
---`

const translatePrompt = `Translate the following Hindi text to English.
Keep names, numbers and technical terms unchanged. Output only the translation.

Text:
---
%s
---`

// Gemini calls the Gemini API for summarization and translation,
// rotating through API keys on quota errors.
type Gemini struct {
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

// NewGemini creates a Gemini client that rotates through the supplied API keys.
func NewGemini(apiKeys []string, model string, log logger.Logger) *Gemini {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &Gemini{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}

// Summarize implements Model. Length bounds are expressed as word counts in
// the prompt since the API does not take token limits per call.
func (g *Gemini) Summarize(ctx context.Context, text string, p Params) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, p.MinLength, p.MaxLength, p.NoRepeatNgramSize, text)

	var temperature float32
	if p.DoSample {
		temperature = 0.7
	}

	out, err := g.generate(ctx, prompt, temperature)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Translate renders Hindi text into English.
func (g *Gemini) Translate(ctx context.Context, text string) (string, error) {
	out, err := g.generate(ctx, fmt.Sprintf(translatePrompt, text), 0)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// generate sends a prompt to Gemini and returns the response text.
// Rotates API keys on 429 / quota errors.
func (g *Gemini) generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	if len(g.apiKeys) == 0 {
		return "", fmt.Errorf("no API keys configured")
	}

	var genCfg *genai.GenerateContentConfig
	if temperature > 0 {
		genCfg = &genai.GenerateContentConfig{Temperature: &temperature}
	}

	attempts := len(g.apiKeys)
	var lastErr error

	for range attempts {
		key := g.apiKeys[g.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), genCfg)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", g.currentKey+1)
				g.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *Gemini) rotateKey() {
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}
