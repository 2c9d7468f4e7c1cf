package tonal

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = 16000

func sine(freq float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 0.6 * math.Sin(2*math.Pi*freq*float64(i)/testRate)
	}
	return out
}

func TestDetectFrameSine(t *testing.T) {
	pd := NewPitchDetector(testRate)

	for _, freq := range []float64{110, 200, 330} {
		frame := pd.DetectFrame(sine(freq, 2048))
		require.True(t, frame.Voiced(), "%.0f Hz not voiced", freq)
		assert.InDelta(t, freq, frame.Frequency, freq*0.01)
		assert.Greater(t, frame.Salience, 0.85)
	}
}

func TestDetectFrameSilenceAndNoise(t *testing.T) {
	pd := NewPitchDetector(testRate)

	assert.False(t, pd.DetectFrame(make([]float64, 2048)).Voiced())

	rng := rand.New(rand.NewSource(7))
	noise := make([]float64, 2048)
	for i := range noise {
		noise[i] = rng.Float64()*2 - 1
	}
	assert.False(t, pd.DetectFrame(noise).Voiced())
}

func TestTrack(t *testing.T) {
	pd := NewPitchDetector(testRate)

	signal := sine(180, testRate)
	frames := pd.Track(signal)
	require.Len(t, frames, 1+len(signal)/512)

	pitches := VoicedPitches(frames)
	require.NotEmpty(t, pitches)
	for _, p := range pitches {
		assert.InDelta(t, 180.0, p, 3.0)
	}

	assert.Empty(t, pd.Track(nil))
	assert.Empty(t, VoicedPitches(pd.Track(make([]float64, testRate))))
}

func TestParabolicInterpolation(t *testing.T) {
	// symmetric neighbours keep the integer index
	assert.Equal(t, 5.0, parabolicInterpolation([]float64{9, 9, 9, 9, 2, 1, 2, 9}, 5))
	// edges are returned unchanged
	assert.Equal(t, 0.0, parabolicInterpolation([]float64{1, 2, 3}, 0))
	// minimum between samples 1 and 2
	got := parabolicInterpolation([]float64{4, 1, 1, 4}, 1)
	assert.InDelta(t, 1.5, got, 1e-12)
}
