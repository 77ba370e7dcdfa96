package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/meetscribe/meetscribe/internal/analysis"
	"github.com/meetscribe/meetscribe/internal/audio"
	"github.com/meetscribe/meetscribe/internal/config"
	"github.com/meetscribe/meetscribe/internal/decoder"
	"github.com/meetscribe/meetscribe/internal/logger"
	"github.com/meetscribe/meetscribe/internal/pipeline"
	"github.com/meetscribe/meetscribe/internal/summarizer"
	"github.com/meetscribe/meetscribe/internal/transcriber"
	"github.com/meetscribe/meetscribe/internal/watcher"
	"github.com/meetscribe/meetscribe/pkg/executor"
)

func main() {
	var (
		configPath      = flag.String("config", "config.yaml", "path to config file")
		input           = flag.String("input", "", "recording to process (or transcript with -reuse-transcript)")
		outDir          = flag.String("outdir", "", "output directory (default from config)")
		language        = flag.String("language", "en", "audio language: en or hi")
		timestamps      = flag.Bool("timestamps", false, "prefix live transcript lines with segment start times")
		noProgress      = flag.Bool("no-progress", false, "disable the transcription progress line")
		skipSummary     = flag.Bool("skip-summary", false, "skip the summary artifact")
		reuseTranscript = flag.Bool("reuse-transcript", false, "treat input as an existing transcript .txt and skip audio handling")
		translate       = flag.Bool("translate", false, "translate a Hindi transcript to English before analysis")
		watch           = flag.Bool("watch", false, "watch the configured input directory for new recordings")
	)
	flag.Parse()

	ctx := context.Background()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	if *language != "en" && *language != "hi" {
		log.Error(ctx, "Unsupported language %q: use en or hi", *language)
		os.Exit(1)
	}
	if *translate && *language != "hi" {
		log.Warn(ctx, "-translate only works with -language hi. Skipping translation.")
		*translate = false
	}

	p, err := buildPipeline(cfg, log)
	if err != nil {
		log.Error(ctx, "Failed to build pipeline: %v", err)
		os.Exit(1)
	}

	if *outDir == "" {
		*outDir = cfg.Paths.Output
	}

	opts := pipeline.Options{
		Language:    *language,
		Timestamps:  *timestamps,
		Progress:    !*noProgress,
		SkipSummary: *skipSummary,
		Translate:   *translate,
	}

	if *watch {
		runWatch(ctx, cfg, p, *outDir, opts, log)
		return
	}

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Usage: meetscribe -input recording.mp3 [-outdir out] [-language hi] or meetscribe -watch")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *reuseTranscript {
		if err := runFromTranscript(ctx, p, *input, *outDir, opts); err != nil {
			log.Error(ctx, "Processing failed: %v", err)
			os.Exit(1)
		}
		return
	}

	if _, err := p.Process(ctx, *input, *outDir, opts); err != nil {
		var modelErr *decoder.ModelNotFoundError
		if errors.As(err, &modelErr) {
			log.Error(ctx, "%v", modelErr)
		} else {
			log.Error(ctx, "Processing failed: %v", err)
		}
		os.Exit(1)
	}
}

// loadConfig falls back to built-in defaults when the file is absent so the
// tool works without any setup.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func buildPipeline(cfg *config.Config, log logger.Logger) (pipeline.Pipeline, error) {
	exec := executor.New()
	conv := audio.NewConverter(cfg.FFmpeg.BinaryPath, exec, log)

	sessions := decoder.NewFactory(cfg.Decoder, log)
	trans := transcriber.New(cfg.Decoder, sessions, log)

	rules, err := buildRules(cfg.Analysis)
	if err != nil {
		return nil, err
	}
	analyzer := analysis.New(rules, cfg.Analysis.MaxTopics, cfg.Analysis.MaxActionItems)

	apiKeys := cfg.Summarizer.APIKeys
	if len(apiKeys) == 0 {
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			apiKeys = []string{key}
		}
	}
	gemini := summarizer.NewGemini(apiKeys, cfg.Summarizer.Model, log)
	shaper := summarizer.NewShaper(gemini, cfg.Summarizer, log)
	translator := summarizer.NewTranslator(gemini, log)

	return pipeline.New(conv, trans, analyzer, shaper, translator, cfg.Paths, log), nil
}

func buildRules(cfg config.AnalysisConfig) (*analysis.Rules, error) {
	if len(cfg.Categories) == 0 {
		return analysis.DefaultRules(), nil
	}

	categories := make([]analysis.Category, 0, len(cfg.Categories))
	for _, c := range cfg.Categories {
		categories = append(categories, analysis.Category{Name: c.Name, Keywords: c.Keywords})
	}
	return analysis.NewRules(categories)
}

func runFromTranscript(ctx context.Context, p pipeline.Pipeline, input, outDir string, opts pipeline.Options) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	transcript := string(data)
	basename := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	basename = strings.TrimSuffix(basename, "_transcript")

	artifacts, err := p.ProcessTranscript(ctx, transcript, opts)
	if err != nil {
		return err
	}
	return p.WriteArtifacts(ctx, outDir, basename, artifacts)
}

func runWatch(ctx context.Context, cfg *config.Config, p pipeline.Pipeline, outDir string, opts pipeline.Options, log logger.Logger) {
	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Temp, outDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Error(ctx, "Failed to create directory %s: %v", dir, err)
			os.Exit(1)
		}
	}

	handler := func(ctx context.Context, filePath string) error {
		_, err := p.Process(ctx, filePath, outDir, opts)
		return err
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", outDir)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()
}
