package decoder

import (
	"context"
	"testing"

	"github.com/meetscribe/meetscribe/internal/logger"
)

// stubEngine replays scripted payloads, one per Accept call, then a final one.
type stubEngine struct {
	accepts [][]byte
	final   []byte
	calls   int
	closed  bool
}

func (s *stubEngine) Accept(ctx context.Context, chunk []byte) ([]byte, bool, error) {
	if s.calls >= len(s.accepts) {
		return nil, false, nil
	}
	raw := s.accepts[s.calls]
	s.calls++
	if raw == nil {
		return nil, false, nil
	}
	return raw, true, nil
}

func (s *stubEngine) Final(ctx context.Context) ([]byte, error) {
	return s.final, nil
}

func (s *stubEngine) Close() error {
	s.closed = true
	return nil
}

func TestAdapterPreservesOrder(t *testing.T) {
	ctx := context.Background()
	eng := &stubEngine{
		accepts: [][]byte{
			[]byte(`{"text": "hello"}`),
			[]byte(`{"text": ""}`),
			[]byte(`{"text": "world"}`),
		},
		final: []byte(`{"text": "done"}`),
	}
	a := NewAdapter(eng, logger.New("error"))

	chunk := make([]byte, 8000)
	for range eng.accepts {
		if _, _, err := a.Feed(ctx, chunk); err != nil {
			t.Fatalf("Feed() error = %v", err)
		}
	}
	if _, err := a.Drain(ctx); err != nil {
		t.Fatalf("Drain() error = %v", err)
	}

	if got := a.Transcript(); got != "hello world done" {
		t.Errorf("Transcript() = %q, want %q", got, "hello world done")
	}
}

func TestAdapterAbsorbsMalformedJSON(t *testing.T) {
	ctx := context.Background()
	eng := &stubEngine{
		accepts: [][]byte{
			[]byte(`{"text": "first"}`),
			[]byte(`{not json at all`),
			[]byte(`{"text": "second"}`),
		},
		final: []byte(`garbage`),
	}
	a := NewAdapter(eng, logger.New("error"))

	chunk := make([]byte, 8000)
	for range eng.accepts {
		if _, _, err := a.Feed(ctx, chunk); err != nil {
			t.Fatalf("Feed() error = %v, malformed JSON must not be fatal", err)
		}
	}
	if _, err := a.Drain(ctx); err != nil {
		t.Fatalf("Drain() error = %v", err)
	}

	if got := a.Transcript(); got != "first second" {
		t.Errorf("Transcript() = %q, want %q", got, "first second")
	}
}

func TestAdapterSilentChunks(t *testing.T) {
	ctx := context.Background()
	eng := &stubEngine{
		accepts: [][]byte{nil, nil, nil},
		final:   []byte(`{"text": ""}`),
	}
	a := NewAdapter(eng, logger.New("error"))

	chunk := make([]byte, 8000)
	for range eng.accepts {
		res, ok, err := a.Feed(ctx, chunk)
		if err != nil {
			t.Fatalf("Feed() error = %v", err)
		}
		if ok || res.Text != "" {
			t.Errorf("Feed() on silent chunk = (%+v, %v), want no result", res, ok)
		}
	}
	if _, err := a.Drain(ctx); err != nil {
		t.Fatalf("Drain() error = %v", err)
	}

	if got := a.Transcript(); got != "" {
		t.Errorf("Transcript() = %q, want empty", got)
	}
}

func TestParseResult(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantText string
		wantOK   bool
	}{
		{"plain text", `{"text": "hello there"}`, "hello there", true},
		{"text with timings", `{"text": "hi", "result": [{"word": "hi", "start": 0.5, "end": 0.9}]}`, "hi", true},
		{"whitespace trimmed", `{"text": "  padded  "}`, "padded", true},
		{"empty payload", ``, "", false},
		{"malformed", `{"text": `, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := ParseResult([]byte(tt.raw))
			if ok != tt.wantOK {
				t.Fatalf("ParseResult() ok = %v, want %v", ok, tt.wantOK)
			}
			if res.Text != tt.wantText {
				t.Errorf("ParseResult() text = %q, want %q", res.Text, tt.wantText)
			}
		})
	}
}

func TestParseResultWordTimings(t *testing.T) {
	raw := `{"text": "hello world", "result": [
		{"word": "hello", "start": 1.2, "end": 1.6, "conf": 0.98},
		{"word": "world", "start": 1.7, "end": 2.1, "conf": 0.95}
	]}`

	res, ok := ParseResult([]byte(raw))
	if !ok {
		t.Fatal("ParseResult() ok = false")
	}
	if len(res.Words) != 2 {
		t.Fatalf("len(Words) = %d, want 2", len(res.Words))
	}
	if res.Words[0].Start != 1.2 {
		t.Errorf("Words[0].Start = %v, want 1.2", res.Words[0].Start)
	}
}

func TestIsPartial(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"partial", `{"partial": "hel"}`, true},
		{"final", `{"text": "hello"}`, false},
		{"malformed", `nope`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isPartial([]byte(tt.raw)); got != tt.want {
				t.Errorf("isPartial() = %v, want %v", got, tt.want)
			}
		})
	}
}
