package transcriber

import (
	"io"
	"os"

	"github.com/meetscribe/meetscribe/internal/config"
	"github.com/meetscribe/meetscribe/internal/logger"
)

type implTranscriber struct {
	cfg      config.DecoderConfig
	sessions SessionFactory
	logger   logger.Logger
	progress io.Writer
}

// New creates a new Transcriber instance
func New(cfg config.DecoderConfig, sessions SessionFactory, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		sessions: sessions,
		logger:   log,
		progress: os.Stderr,
	}
}
