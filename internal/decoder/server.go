package decoder

import (
	"context"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/meetscribe/meetscribe/internal/logger"
)

// serverEngine talks to a running STT websocket server (the vosk-server wire
// protocol): a config message up front, one binary PCM chunk per message,
// one JSON reply per chunk, and {"eof": 1} to flush the final utterance.
type serverEngine struct {
	conn   *websocket.Conn
	logger logger.Logger
}

// newServerEngine dials the server and opens one recognition session
func newServerEngine(ctx context.Context, url string, sampleRate int, log logger.Logger) (*serverEngine, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial decoder server %s: %w", url, err)
	}

	cfg := fmt.Sprintf(`{"config": {"sample_rate": %d, "words": true}}`, sampleRate)
	if err := conn.WriteMessage(websocket.TextMessage, []byte(cfg)); err != nil {
		conn.Close()
		return nil, fmt.Errorf("send decoder config: %w", err)
	}

	return &serverEngine{conn: conn, logger: log}, nil
}

// Accept sends one chunk and reads the server's reply for it
func (e *serverEngine) Accept(ctx context.Context, chunk []byte) ([]byte, bool, error) {
	if err := e.conn.WriteMessage(websocket.BinaryMessage, chunk); err != nil {
		return nil, false, fmt.Errorf("send chunk: %w", err)
	}

	_, raw, err := e.conn.ReadMessage()
	if err != nil {
		return nil, false, fmt.Errorf("read result: %w", err)
	}

	if isPartial(raw) {
		return nil, false, nil
	}
	return raw, true, nil
}

// Final asks the server to flush whatever utterance is still pending
func (e *serverEngine) Final(ctx context.Context) ([]byte, error) {
	if err := e.conn.WriteMessage(websocket.TextMessage, []byte(`{"eof": 1}`)); err != nil {
		return nil, fmt.Errorf("send eof: %w", err)
	}

	_, raw, err := e.conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("read final result: %w", err)
	}
	return raw, nil
}

func (e *serverEngine) Close() error {
	return e.conn.Close()
}
