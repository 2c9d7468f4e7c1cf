package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanStdDev(t *testing.T) {
	mean, std := MeanStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 5.0, mean, 1e-12)
	assert.InDelta(t, 2.0, std, 1e-12)
}

func TestEmptyInputsAreZero(t *testing.T) {
	assert.Zero(t, Mean(nil))
	assert.Zero(t, PopulationStdDev(nil))
	assert.Zero(t, PopulationStdDev([]float64{3}))
	assert.Zero(t, Max(nil))
	assert.Zero(t, Min(nil))
	assert.Zero(t, Sum(nil))
}

func TestMinMax(t *testing.T) {
	data := []float64{0.3, -1.5, 2.25, 0}
	assert.Equal(t, 2.25, Max(data))
	assert.Equal(t, -1.5, Min(data))
}

func TestInverseVariationScore(t *testing.T) {
	tests := []struct {
		name      string
		mean, std float64
		want      float64
	}{
		{name: "steady", mean: 200, std: 0, want: 100},
		{name: "ten percent", mean: 200, std: 20, want: 90},
		{name: "floor at zero", mean: 1, std: 5, want: 0},
		{name: "zero mean guarded", mean: 0, std: 3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, InverseVariationScore(tt.mean, tt.std), 1e-9)
		})
	}
}

func TestClampAndRound(t *testing.T) {
	assert.Equal(t, 100.0, Clamp(123.4, 0, 100))
	assert.Equal(t, 0.0, Clamp(-3, 0, 100))
	assert.Equal(t, 42.5, Clamp(42.5, 0, 100))

	assert.Equal(t, 57.13, Round(57.12888, 2))
	assert.Equal(t, -10.0, Round(-9.999, 2))
}

func TestNextPowerOfTwo(t *testing.T) {
	assert.Equal(t, 1, NextPowerOfTwo(0))
	assert.Equal(t, 2048, NextPowerOfTwo(2048))
	assert.Equal(t, 4096, NextPowerOfTwo(2049))
}

func TestPadCenterAndFrameCount(t *testing.T) {
	padded := PadCenter([]float64{1, 2, 3}, 2)
	assert.Equal(t, []float64{0, 0, 1, 2, 3, 0, 0}, padded)

	assert.Equal(t, 0, FrameCount(100, 2048, 512))
	assert.Equal(t, 1, FrameCount(2048, 2048, 512))
	assert.Equal(t, 3, FrameCount(3072, 2048, 512))
	assert.Equal(t, 0, FrameCount(4096, 0, 512))

	// centered framing: 1 + n/hop frames
	n := 16000
	assert.Equal(t, 1+n/512, FrameCount(len(PadCenter(make([]float64, n), 1024)), 2048, 512))
}

func TestRMS(t *testing.T) {
	assert.Zero(t, RMS(nil))
	assert.InDelta(t, 0.5, RMS([]float64{0.5, -0.5, 0.5, -0.5}), 1e-12)
}
