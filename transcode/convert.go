package transcode

import (
	"fmt"

	resampling "github.com/tphakala/go-audio-resampling"
)

// DownmixToMono averages interleaved channels into a single channel. A
// trailing partial frame is dropped.
func DownmixToMono(pcm []float64, channels int) []float64 {
	if channels <= 1 {
		return pcm
	}

	frames := len(pcm) / channels
	mono := make([]float64, frames)
	for i := range frames {
		sum := 0.0
		for c := range channels {
			sum += pcm[i*channels+c]
		}
		mono[i] = sum / float64(channels)
	}
	return mono
}

// Resample converts mono PCM from one rate to another with the pure Go
// soxr-style resampler. Matching rates return the input unchanged.
func Resample(pcm []float64, fromRate, toRate int) ([]float64, error) {
	if fromRate <= 0 || toRate <= 0 {
		return nil, fmt.Errorf("invalid sample rates %d -> %d", fromRate, toRate)
	}
	if fromRate == toRate || len(pcm) == 0 {
		return pcm, nil
	}

	config := &resampling.Config{
		InputRate:  float64(fromRate),
		OutputRate: float64(toRate),
		Channels:   1,
		Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
	}

	resampler, err := resampling.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create resampler: %w", err)
	}

	out, err := resampler.Process(pcm)
	if err != nil {
		return nil, fmt.Errorf("resample error: %w", err)
	}

	return out, nil
}
