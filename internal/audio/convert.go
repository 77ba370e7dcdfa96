package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/meetscribe/meetscribe/internal/logger"
	"github.com/meetscribe/meetscribe/pkg/executor"
)

// supportedExtensions are the container/codec formats accepted as input.
var supportedExtensions = []string{".mp3", ".wav", ".mp4", ".m4a", ".avi", ".mov"}

// IsSupported reports whether the file extension is an accepted recording format
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range supportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// SupportedExtensions returns the accepted input extensions, for error messages
func SupportedExtensions() []string {
	out := make([]string, len(supportedExtensions))
	copy(out, supportedExtensions)
	return out
}

type Converter struct {
	binary   string
	executor executor.Executor
	logger   logger.Logger
}

// NewConverter creates a Converter that shells out to ffmpeg
func NewConverter(binary string, exec executor.Executor, log logger.Logger) *Converter {
	return &Converter{
		binary:   binary,
		executor: exec,
		logger:   log,
	}
}

// Convert transcodes any supported recording into mono 16kHz 16-bit PCM WAV,
// the only format the decoder accepts. Returns the path of the converted file.
func (c *Converter) Convert(ctx context.Context, inputPath, outDir string) (string, error) {
	if !IsSupported(inputPath) {
		return "", &FormatError{
			Detail: fmt.Sprintf("%s: supported extensions are %s",
				filepath.Ext(inputPath), strings.Join(supportedExtensions, ", ")),
		}
	}

	if _, err := os.Stat(inputPath); err != nil {
		return "", fmt.Errorf("input audio not found: %s", inputPath)
	}

	if _, err := c.executor.LookPath(c.binary); err != nil {
		return "", fmt.Errorf("%w: %s", ErrFFmpegNotFound, c.binary)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	outPath := filepath.Join(outDir, stem+"_audio_16k.wav")

	c.logger.Info(ctx, "Converting to 16kHz mono WAV: %s", inputPath)

	// -vn: drop any video stream
	// -ar 16000 -ac 1 -c:a pcm_s16le: the decoder's required input format
	args := []string{
		"-y",
		"-i", inputPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-f", "wav",
		outPath,
	}

	if _, err := c.executor.Execute(ctx, c.binary, args...); err != nil {
		return "", fmt.Errorf("ffmpeg conversion: %w", err)
	}

	if _, err := os.Stat(outPath); err != nil {
		return "", fmt.Errorf("converted file was not created: %s", outPath)
	}

	c.logger.Info(ctx, "Audio converted: %s", outPath)
	return outPath, nil
}
