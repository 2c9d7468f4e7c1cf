package transcode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/wav"
)

const wavPCMFormat = 1

// isWAV sniffs the RIFF/WAVE header
func isWAV(data []byte) bool {
	return len(data) >= 12 &&
		bytes.Equal(data[0:4], []byte("RIFF")) &&
		bytes.Equal(data[8:12], []byte("WAVE"))
}

// decodeWAV reads integer PCM WAV into interleaved samples in [-1, 1] at
// the file's own rate and channel count. Other encodings (IEEE float,
// A-law, mu-law) return ErrUnsupportedFormat.
func decodeWAV(r io.ReadSeeker) (*AudioData, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %w", ErrUnsupportedFormat)
	}

	if decoder.WavAudioFormat != wavPCMFormat {
		return nil, fmt.Errorf("WAV encoding %d: %w", decoder.WavAudioFormat, ErrUnsupportedFormat)
	}

	bitDepth := int(decoder.BitDepth)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("WAV bit depth %d: %w", bitDepth, ErrUnsupportedFormat)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("read PCM buffer: %w", err)
	}

	channels := buf.Format.NumChannels
	if channels <= 0 {
		return nil, fmt.Errorf("WAV without channels: %w", ErrUnsupportedFormat)
	}

	pcm := make([]float64, len(buf.Data))
	scale := float64(int64(1) << (bitDepth - 1))
	for i, v := range buf.Data {
		if bitDepth == 8 {
			// 8-bit WAV is unsigned
			v -= 128
		}
		pcm[i] = float64(v) / scale
	}

	return &AudioData{
		PCM:        pcm,
		SampleRate: buf.Format.SampleRate,
		Channels:   channels,
		Duration:   samplesDuration(len(pcm)/channels, buf.Format.SampleRate),
		Codec:      fmt.Sprintf("pcm_s%dle", bitDepth),
	}, nil
}
