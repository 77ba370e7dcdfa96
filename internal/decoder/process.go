package decoder

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/meetscribe/meetscribe/internal/logger"
)

// processEngine runs a recognizer helper binary: raw PCM goes in on stdin,
// one JSON result per line comes back on stdout.
type processEngine struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	logger logger.Logger

	mu      sync.Mutex
	queue   [][]byte
	readErr error

	done chan struct{}
}

// newProcessEngine starts the recognizer subprocess for one session
func newProcessEngine(ctx context.Context, command, modelPath string, sampleRate int, log logger.Logger) (*processEngine, error) {
	cmd := exec.CommandContext(ctx, command,
		"--model", modelPath,
		"--sample-rate", strconv.Itoa(sampleRate),
		"--json",
	)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start recognizer %q: %w", command, err)
	}

	e := &processEngine{
		cmd:    cmd,
		stdin:  stdin,
		logger: log,
		done:   make(chan struct{}),
	}

	go e.readResults(ctx, stdout)
	go e.logStderr(ctx, stderr)

	return e, nil
}

// Accept writes one chunk and hands back the oldest finalized result, if any.
// The recognizer emits results asynchronously, so a chunk write and the
// result it triggers are not strictly paired; order is still preserved.
func (e *processEngine) Accept(ctx context.Context, chunk []byte) ([]byte, bool, error) {
	if _, err := e.stdin.Write(chunk); err != nil {
		return nil, false, fmt.Errorf("write chunk: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.queue) == 0 {
		return nil, false, nil
	}
	raw := e.queue[0]
	e.queue = e.queue[1:]
	return raw, true, nil
}

// Final closes stdin so the recognizer flushes its pending utterance, then
// merges every remaining result into a single payload.
func (e *processEngine) Final(ctx context.Context) ([]byte, error) {
	if err := e.stdin.Close(); err != nil {
		return nil, fmt.Errorf("close recognizer stdin: %w", err)
	}

	select {
	case <-e.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if err := e.cmd.Wait(); err != nil {
		return nil, fmt.Errorf("recognizer exited: %w", err)
	}

	e.mu.Lock()
	remaining := e.queue
	e.queue = nil
	readErr := e.readErr
	e.mu.Unlock()

	if readErr != nil {
		return nil, fmt.Errorf("read recognizer output: %w", readErr)
	}

	var texts []string
	for _, raw := range remaining {
		if res, ok := ParseResult(raw); ok && res.Text != "" {
			texts = append(texts, res.Text)
		}
	}
	merged, err := json.Marshal(Result{Text: strings.Join(texts, " ")})
	if err != nil {
		return nil, fmt.Errorf("encode final result: %w", err)
	}
	return merged, nil
}

// Close kills the subprocess if it is still running
func (e *processEngine) Close() error {
	if e.cmd.ProcessState != nil {
		return nil
	}
	if e.cmd.Process != nil {
		return e.cmd.Process.Kill()
	}
	return nil
}

func (e *processEngine) readResults(ctx context.Context, r io.Reader) {
	defer close(e.done)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || isPartial([]byte(line)) {
			continue
		}
		raw := make([]byte, len(line))
		copy(raw, line)

		e.mu.Lock()
		e.queue = append(e.queue, raw)
		e.mu.Unlock()
	}
	if err := scanner.Err(); err != nil {
		e.mu.Lock()
		e.readErr = err
		e.mu.Unlock()
	}
}

func (e *processEngine) logStderr(ctx context.Context, r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			e.logger.Debug(ctx, "recognizer: %s", line)
		}
	}
}
