package transcode

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os/exec"
	"strconv"
	"strings"

	"github.com/RyanBlaney/sonido-poise/logging"
)

// decodeWithFFmpeg pipes the recording through ffmpeg, which down-mixes and
// resamples to the target rate on the way out
func (d *Decoder) decodeWithFFmpeg(ctx context.Context, data []byte) (*AudioData, error) {
	logger := d.logger.WithFields(logging.Fields{
		"function": "decodeWithFFmpeg",
	})

	if d.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.config.Timeout)
		defer cancel()
	}

	args := d.buildFFmpegArgs()
	cmd := exec.CommandContext(ctx, d.config.FFmpegPath, args...)
	cmd.Stdin = bytes.NewReader(data)

	logger.Debug("Running ffmpeg command", logging.Fields{
		"args": strings.Join(args, " "),
	})

	output, err := cmd.Output()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("ffmpeg not found at %q: %w", d.config.FFmpegPath, ErrUnsupportedFormat)
		}
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			logger.Error(err, "Ffmpeg decode failed", logging.Fields{
				"stderr": string(exitError.Stderr),
			})
			return nil, fmt.Errorf("ffmpeg decode failed: %w, stderr: %s", err, strings.TrimSpace(string(exitError.Stderr)))
		}
		return nil, fmt.Errorf("ffmpeg decode failed: %w", err)
	}

	samples := bytesToFloat64(output)
	if len(samples) == 0 {
		return nil, fmt.Errorf("no audio samples decoded: %w", ErrUnsupportedFormat)
	}

	logger.Debug("FFmpeg decode completed", logging.Fields{
		"output_samples": len(samples),
		"sample_rate":    d.config.TargetSampleRate,
	})

	return &AudioData{
		PCM:        samples,
		SampleRate: d.config.TargetSampleRate,
		Channels:   1,
		Duration:   samplesDuration(len(samples), d.config.TargetSampleRate),
		Codec:      "ffmpeg",
	}, nil
}

// buildFFmpegArgs reads stdin and writes raw mono f64le at the target rate
func (d *Decoder) buildFFmpegArgs() []string {
	args := []string{
		"-v", "error", // Suppress verbose output
		"-i", "pipe:0",
		"-vn",
		"-f", "f64le",
		"-ac", "1",
		"-ar", strconv.Itoa(d.config.TargetSampleRate),
	}

	var filters []string
	switch d.config.ResampleQuality {
	case "fast":
		filters = append(filters, "aresample=resampler=soxr:precision=16")
	case "medium":
		filters = append(filters, "aresample=resampler=soxr:precision=20")
	case "high":
		filters = append(filters, "aresample=resampler=soxr:precision=28")
	}

	if d.config.EnableNormalization {
		if norm := d.buildNormalizationFilter(); norm != "" {
			filters = append(filters, norm)
		}
	}

	if len(filters) > 0 {
		args = append(args, "-af", strings.Join(filters, ","))
	}

	if d.config.MaxDuration > 0 {
		args = append(args, "-t", fmt.Sprintf("%.2f", d.config.MaxDuration.Seconds()))
	}

	return append(args, "pipe:1")
}

// buildNormalizationFilter returns the ffmpeg loudness filter for the
// configured method
func (d *Decoder) buildNormalizationFilter() string {
	switch d.config.NormalizationMethod {
	case "loudnorm":
		// EBU R128 at speech levels
		return "loudnorm=I=-20.0:TP=-3.0:LRA=5.0"
	case "dynaudnorm":
		return "dynaudnorm=p=0.95:m=10:s=12"
	default:
		return ""
	}
}

// bytesToFloat64 converts raw float64 little-endian bytes to samples
func bytesToFloat64(data []byte) []float64 {
	// Trim to multiple of 8 bytes
	data = data[:len(data)-len(data)%8]

	samples := make([]float64, len(data)/8)
	for i := range samples {
		bits := binary.LittleEndian.Uint64(data[i*8 : i*8+8])
		samples[i] = math.Float64frombits(bits)
	}
	return samples
}
