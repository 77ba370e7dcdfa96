package transcriber

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/meetscribe/meetscribe/internal/audio"
	"github.com/meetscribe/meetscribe/internal/decoder"
)

// progressInterval bounds how often the status line is rewritten.
const progressInterval = 2 * time.Second

// Transcribe walks the WAV sample buffer in fixed-size chunks and feeds them
// to a fresh decoder session. Every finalized non-empty segment is appended
// to the transcript in order; the sink, timestamps and progress options only
// affect side-channel output, never the return value.
func (t *implTranscriber) Transcribe(ctx context.Context, wavPath string, opts Options) (string, error) {
	pcm, err := audio.ReadWAV(wavPath)
	if err != nil {
		return "", err
	}

	// Format is validated before any decoder resource is touched
	if err := pcm.Validate(t.cfg.SampleRate); err != nil {
		return "", err
	}

	language := opts.Language
	if language == "" {
		language = "en"
	}

	sess, err := t.sessions.NewSession(ctx, language)
	if err != nil {
		return "", err
	}
	defer sess.Close()

	chunkBytes := opts.ChunkBytes
	if chunkBytes <= 0 {
		chunkBytes = t.cfg.ChunkBytes
	}

	totalBytes := len(pcm.Data)
	durationSec := pcm.Duration().Seconds()

	t.logger.Info(ctx, "Transcribing %s (%.1fs of audio, %d byte chunks)", wavPath, durationSec, chunkBytes)

	start := time.Now()
	lastUpdate := start

	for offset := 0; offset < totalBytes; offset += chunkBytes {
		end := offset + chunkBytes
		if end > totalBytes {
			end = totalBytes
		}

		res, ok, err := sess.Feed(ctx, pcm.Data[offset:end])
		if err != nil {
			return "", err
		}
		if ok && res.Text != "" {
			t.emit(opts, res, float64(end)/float64(totalBytes)*durationSec)
		}

		if opts.Progress {
			now := time.Now()
			if now.Sub(lastUpdate) >= progressInterval || end >= totalBytes {
				t.printProgress(start, end, totalBytes)
				lastUpdate = now
			}
		}
	}

	res, err := sess.Drain(ctx)
	if err != nil {
		return "", err
	}
	if res.Text != "" {
		t.emit(opts, res, durationSec)
	}

	if opts.Progress {
		fmt.Fprintf(t.progress, "\rTranscribing: 100%% complete (%.1fs)        \n", time.Since(start).Seconds())
	}

	return sess.Transcript(), nil
}

// emit writes one finalized segment to the sink, flushing immediately so the
// line survives a later crash
func (t *implTranscriber) emit(opts Options, res decoder.Result, approxSec float64) {
	if opts.Sink == nil {
		return
	}

	line := res.Text
	if opts.Timestamps {
		ts := approxSec
		if len(res.Words) > 0 {
			ts = res.Words[0].Start
		}
		line = fmt.Sprintf("[%.2fs] %s", ts, res.Text)
	}

	fmt.Fprintln(opts.Sink, line)

	switch w := opts.Sink.(type) {
	case *os.File:
		w.Sync()
	case *bufio.Writer:
		w.Flush()
	}
}

// printProgress rewrites the single status line with percent and a linear ETA
func (t *implTranscriber) printProgress(start time.Time, processed, total int) {
	frac := float64(processed) / float64(total)
	elapsed := time.Since(start).Seconds()

	eta := 0.0
	if frac > 0 {
		eta = elapsed/frac - elapsed
	}

	fmt.Fprintf(t.progress, "\rTranscribing: %.1f%% (%dMB/%dMB) ETA: %.0fs    ",
		frac*100, processed/1024/1024, total/1024/1024, eta)
}
