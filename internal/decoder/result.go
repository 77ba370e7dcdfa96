package decoder

import (
	"encoding/json"
	"strings"
)

// ParseResult decodes a recognizer JSON payload. Malformed JSON yields an
// empty Result and false; a decoder hiccup on one chunk must never abort
// the stream.
func ParseResult(raw []byte) (Result, bool) {
	if len(raw) == 0 {
		return Result{}, false
	}

	var res Result
	if err := json.Unmarshal(raw, &res); err != nil {
		return Result{}, false
	}

	res.Text = strings.TrimSpace(res.Text)
	return res, true
}

// isPartial reports whether a payload is an interim result (no final text yet)
func isPartial(raw []byte) bool {
	var probe struct {
		Partial *string `json:"partial"`
		Text    *string `json:"text"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	return probe.Text == nil && probe.Partial != nil
}
