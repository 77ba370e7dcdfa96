package audio

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"
)

// PCM holds a fully decoded WAV sample buffer.
type PCM struct {
	Data          []byte
	SampleRate    int
	Channels      int
	BitsPerSample int
}

// Duration computes total audio length from the frame count and sample rate
func (p *PCM) Duration() time.Duration {
	frameSize := p.Channels * p.BitsPerSample / 8
	if frameSize == 0 || p.SampleRate == 0 {
		return 0
	}
	frames := len(p.Data) / frameSize
	return time.Duration(float64(frames) / float64(p.SampleRate) * float64(time.Second))
}

// Validate checks the decoder input contract: 16-bit mono PCM at the given rate
func (p *PCM) Validate(sampleRate int) error {
	if p.SampleRate != sampleRate {
		return &FormatError{
			Detail: fmt.Sprintf("sample rate is %d Hz, WAV must be %d Hz mono 16-bit PCM (convert the recording first)",
				p.SampleRate, sampleRate),
		}
	}
	if p.Channels != 1 {
		return &FormatError{
			Detail: fmt.Sprintf("%d channels, WAV must be mono", p.Channels),
		}
	}
	if p.BitsPerSample != 16 {
		return &FormatError{
			Detail: fmt.Sprintf("%d bits per sample, WAV must be 16-bit PCM", p.BitsPerSample),
		}
	}
	return nil
}

// ReadWAV parses a RIFF/WAVE file into a PCM buffer. Only uncompressed PCM
// (format tag 1) is accepted.
func ReadWAV(path string) (*PCM, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read wav: %w", err)
	}

	if len(raw) < 12 || string(raw[0:4]) != "RIFF" || string(raw[8:12]) != "WAVE" {
		return nil, &FormatError{Detail: "not a RIFF/WAVE file"}
	}

	var pcm PCM
	haveFmt := false

	// Walk the chunk list after the RIFF header
	off := 12
	for off+8 <= len(raw) {
		id := string(raw[off : off+4])
		size := int(binary.LittleEndian.Uint32(raw[off+4 : off+8]))
		body := off + 8
		if body+size > len(raw) {
			size = len(raw) - body
		}

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, &FormatError{Detail: "truncated fmt chunk"}
			}
			format := binary.LittleEndian.Uint16(raw[body : body+2])
			if format != 1 {
				return nil, &FormatError{Detail: fmt.Sprintf("format tag %d, only uncompressed PCM is supported", format)}
			}
			pcm.Channels = int(binary.LittleEndian.Uint16(raw[body+2 : body+4]))
			pcm.SampleRate = int(binary.LittleEndian.Uint32(raw[body+4 : body+8]))
			pcm.BitsPerSample = int(binary.LittleEndian.Uint16(raw[body+14 : body+16]))
			haveFmt = true
		case "data":
			pcm.Data = raw[body : body+size]
		}

		// Chunks are word aligned
		if size%2 == 1 {
			size++
		}
		off = body + size
	}

	if !haveFmt {
		return nil, &FormatError{Detail: "missing fmt chunk"}
	}
	if pcm.Data == nil {
		return nil, &FormatError{Detail: "missing data chunk"}
	}

	return &pcm, nil
}

// WriteWAV writes a PCM buffer as a minimal RIFF/WAVE file
func WriteWAV(path string, pcm *PCM) error {
	frameSize := pcm.Channels * pcm.BitsPerSample / 8
	byteRate := pcm.SampleRate * frameSize

	buf := make([]byte, 0, 44+len(pcm.Data))
	buf = append(buf, "RIFF"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(36+len(pcm.Data)))
	buf = append(buf, "WAVE"...)
	buf = append(buf, "fmt "...)
	buf = binary.LittleEndian.AppendUint32(buf, 16)
	buf = binary.LittleEndian.AppendUint16(buf, 1)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(pcm.Channels))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(pcm.SampleRate))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(byteRate))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(frameSize))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(pcm.BitsPerSample))
	buf = append(buf, "data"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(pcm.Data)))
	buf = append(buf, pcm.Data...)

	return os.WriteFile(path, buf, 0644)
}
