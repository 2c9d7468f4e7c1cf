package transcode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/RyanBlaney/sonido-poise/algorithms/filters"
	"github.com/RyanBlaney/sonido-poise/logging"
)

// ErrUnsupportedFormat is returned when the input is neither a WAV file the
// native decoder handles nor something ffmpeg could be run on
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// AudioData represents decoded audio data
type AudioData struct {
	PCM        []float64     `json:"-"` // interleaved samples in [-1, 1]
	SampleRate int           `json:"sample_rate"`
	Channels   int           `json:"channels"`
	Duration   time.Duration `json:"duration"`
	Source     string        `json:"source,omitempty"`
	Codec      string        `json:"codec,omitempty"`
}

// DecoderConfig holds decoder configuration
type DecoderConfig struct {
	TargetSampleRate int           `json:"target_sample_rate" yaml:"target_sample_rate"`
	MaxDuration      time.Duration `json:"max_duration" yaml:"max_duration"`
	ResampleQuality  string        `json:"resample_quality" yaml:"resample_quality"` // ffmpeg soxr precision: "fast", "medium", "high"
	FFmpegPath       string        `json:"ffmpeg_path" yaml:"ffmpeg_path"`
	Timeout          time.Duration `json:"timeout" yaml:"timeout"` // per ffmpeg run

	// Normalization is off by default since it flattens the loudness
	// variation the energy analysis measures
	EnableNormalization bool   `json:"enable_normalization" yaml:"enable_normalization"`
	NormalizationMethod string `json:"normalization_method" yaml:"normalization_method"` // "loudnorm", "dynaudnorm"

	// RemoveDC high-passes the decoded signal at DCCutoff Hz
	RemoveDC bool    `json:"remove_dc" yaml:"remove_dc"`
	DCCutoff float64 `json:"dc_cutoff" yaml:"dc_cutoff"`
}

// DefaultDecoderConfig returns the configuration producing 16 kHz mono
func DefaultDecoderConfig() *DecoderConfig {
	return &DecoderConfig{
		TargetSampleRate:    16000,
		MaxDuration:         0, // No limit
		ResampleQuality:     "high",
		FFmpegPath:          "ffmpeg", // Assume in PATH
		Timeout:             30 * time.Second,
		EnableNormalization: false,
		NormalizationMethod: "dynaudnorm",
		RemoveDC:            false,
		DCCutoff:            filters.DefaultDCCutoff,
	}
}

// Decoder turns recorded answers into mono PCM at the target rate. WAV is
// decoded natively; anything else (browser webm/ogg blobs, mp3, m4a) is
// piped through ffmpeg.
type Decoder struct {
	config *DecoderConfig
	logger logging.Logger
}

// NewDecoder creates a new audio decoder
func NewDecoder(config *DecoderConfig) *Decoder {
	if config == nil {
		config = DefaultDecoderConfig()
	}
	return &Decoder{
		config: config,
		logger: logging.WithFields(logging.Fields{
			"component": "audio_decoder",
		}),
	}
}

// DecodeFile decodes path with the default configuration
func DecodeFile(ctx context.Context, path string) (*AudioData, error) {
	return NewDecoder(nil).DecodeFile(ctx, path)
}

// DecodeFile reads and decodes an audio file
func (d *Decoder) DecodeFile(ctx context.Context, path string) (*AudioData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read audio file: %w", err)
	}

	audio, err := d.DecodeBytes(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	audio.Source = path

	return audio, nil
}

// DecodeReader decodes audio from an io.Reader
func (d *Decoder) DecodeReader(ctx context.Context, reader io.Reader) (*AudioData, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	return d.DecodeBytes(ctx, data)
}

// DecodeBytes decodes an in-memory recording to mono PCM at the target rate
func (d *Decoder) DecodeBytes(ctx context.Context, data []byte) (*AudioData, error) {
	logger := d.logger.WithFields(logging.Fields{
		"function":  "DecodeBytes",
		"data_size": len(data),
	})

	if len(data) == 0 {
		return nil, fmt.Errorf("empty audio data: %w", ErrUnsupportedFormat)
	}

	if isWAV(data) {
		audio, err := decodeWAV(bytes.NewReader(data))
		switch {
		case err == nil:
			logger.Debug("Decoded WAV natively", logging.Fields{
				"input_sample_rate": audio.SampleRate,
				"input_channels":    audio.Channels,
			})
			return d.conform(audio)
		case errors.Is(err, ErrUnsupportedFormat):
			logger.Debug("WAV encoding not handled natively, falling back to ffmpeg", logging.Fields{
				"reason": err.Error(),
			})
		default:
			return nil, err
		}
	}

	audio, err := d.decodeWithFFmpeg(ctx, data)
	if err != nil {
		return nil, err
	}
	d.removeDC(audio)

	return audio, nil
}

// conform down-mixes to mono, resamples to the target rate and applies
// the duration limit
func (d *Decoder) conform(audio *AudioData) (*AudioData, error) {
	pcm := DownmixToMono(audio.PCM, audio.Channels)

	pcm, err := Resample(pcm, audio.SampleRate, d.config.TargetSampleRate)
	if err != nil {
		return nil, err
	}

	if d.config.MaxDuration > 0 {
		limit := int(d.config.MaxDuration.Seconds() * float64(d.config.TargetSampleRate))
		if len(pcm) > limit {
			pcm = pcm[:limit]
		}
	}

	out := &AudioData{
		PCM:        pcm,
		SampleRate: d.config.TargetSampleRate,
		Channels:   1,
		Duration:   samplesDuration(len(pcm), d.config.TargetSampleRate),
		Source:     audio.Source,
		Codec:      audio.Codec,
	}
	d.removeDC(out)

	return out, nil
}

// removeDC filters mono audio in place when the config asks for it
func (d *Decoder) removeDC(audio *AudioData) {
	if !d.config.RemoveDC {
		return
	}
	audio.PCM = filters.RemoveDC(audio.PCM, audio.SampleRate, d.config.DCCutoff)
}

// ValidateConfig validates the decoder configuration
func (d *Decoder) ValidateConfig() error {
	if d.config.TargetSampleRate <= 0 {
		return fmt.Errorf("target sample rate must be positive: %d", d.config.TargetSampleRate)
	}

	switch d.config.ResampleQuality {
	case "", "fast", "medium", "high":
	default:
		return fmt.Errorf("unknown resample quality %q", d.config.ResampleQuality)
	}

	switch d.config.NormalizationMethod {
	case "", "loudnorm", "dynaudnorm":
	default:
		return fmt.Errorf("unknown normalization method %q", d.config.NormalizationMethod)
	}

	if d.config.RemoveDC && (d.config.DCCutoff <= 0 || d.config.DCCutoff >= float64(d.config.TargetSampleRate)/2) {
		return fmt.Errorf("dc cutoff must be inside (0, %d) Hz: %g", d.config.TargetSampleRate/2, d.config.DCCutoff)
	}

	return nil
}

func samplesDuration(samples, sampleRate int) time.Duration {
	if sampleRate <= 0 {
		return 0
	}
	return time.Duration(samples) * time.Second / time.Duration(sampleRate)
}
