package decoder

import (
	"context"
	"fmt"
	"os"

	"github.com/meetscribe/meetscribe/internal/config"
	"github.com/meetscribe/meetscribe/internal/logger"
)

// Factory opens decoder sessions. Each transcription call gets its own
// session; recognizer state is never shared between in-flight calls.
type Factory struct {
	cfg    config.DecoderConfig
	logger logger.Logger
}

// NewFactory creates a Factory from decoder configuration
func NewFactory(cfg config.DecoderConfig, log logger.Logger) *Factory {
	return &Factory{
		cfg:    cfg,
		logger: log,
	}
}

// NewSession opens a fresh recognizer session for the given language
func (f *Factory) NewSession(ctx context.Context, language string) (*Adapter, error) {
	switch f.cfg.Backend {
	case "server":
		eng, err := newServerEngine(ctx, f.cfg.ServerURL, f.cfg.SampleRate, f.logger)
		if err != nil {
			return nil, err
		}
		return NewAdapter(eng, f.logger), nil

	case "process":
		modelPath, ok := f.cfg.ModelPaths[language]
		if !ok {
			return nil, fmt.Errorf("no model configured for language %q", language)
		}
		if _, err := os.Stat(modelPath); err != nil {
			return nil, &ModelNotFoundError{Language: language, Path: modelPath}
		}
		eng, err := newProcessEngine(ctx, f.cfg.Command, modelPath, f.cfg.SampleRate, f.logger)
		if err != nil {
			return nil, err
		}
		return NewAdapter(eng, f.logger), nil

	default:
		return nil, fmt.Errorf("unknown decoder backend %q", f.cfg.Backend)
	}
}
