package audio

import (
	"errors"
	"fmt"
)

// ErrFFmpegNotFound means the converter tool is missing from PATH.
var ErrFFmpegNotFound = errors.New("ffmpeg not found in PATH; install it and make sure it is available")

// FormatError reports audio input that violates the decoder's input
// contract (sample rate, channel count, bit depth, extension).
type FormatError struct {
	Detail string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unsupported audio format: %s", e.Detail)
}
