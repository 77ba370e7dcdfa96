package pipeline

import (
	"github.com/meetscribe/meetscribe/internal/analysis"
	"github.com/meetscribe/meetscribe/internal/config"
	"github.com/meetscribe/meetscribe/internal/logger"
	"github.com/meetscribe/meetscribe/internal/transcriber"
)

type implPipeline struct {
	converter   Converter
	transcriber transcriber.Transcriber
	analyzer    *analysis.Analyzer
	summarizer  Summarizer
	translator  Translator
	paths       config.PathsConfig
	logger      logger.Logger
}

// New wires the processing chain together.
func New(
	conv Converter,
	trans transcriber.Transcriber,
	analyzer *analysis.Analyzer,
	summ Summarizer,
	transl Translator,
	paths config.PathsConfig,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		converter:   conv,
		transcriber: trans,
		analyzer:    analyzer,
		summarizer:  summ,
		translator:  transl,
		paths:       paths,
		logger:      log,
	}
}
