package filters

import (
	"math"
)

// DCRemoval is a one-pole DC blocking filter:
//
//	y[n] = x[n] - x[n-1] + R * y[n-1]
//
// References:
//   - Julius O. Smith III, "Introduction to Digital Filters with Audio Applications"
//     https://ccrma.stanford.edu/~jos/filters/DC_Blocker.html
//
// Cheap microphones and some browser capture paths leave a constant offset
// on the recording. The offset inflates frame RMS evenly, which lifts the
// voice-break threshold and hides real dropouts.
type DCRemoval struct {
	poleLocation float64 // R (0 < R < 1)

	x1 float64 // x[n-1]
	y1 float64 // y[n-1]
}

// DefaultDCCutoff is low enough to leave the speech band untouched
const DefaultDCCutoff = 20.0

// NewDCRemoval creates a DC blocker with the conventional R = 0.995
func NewDCRemoval() *DCRemoval {
	return &DCRemoval{poleLocation: 0.995}
}

// NewDCRemovalWithCutoff designs the pole for a -3dB point at cutoffFreq
// using R ≈ 1 - 2*pi*fc/fs, valid for fc << fs/2
func NewDCRemovalWithCutoff(sampleRate int, cutoffFreq float64) *DCRemoval {
	dc := NewDCRemoval()
	if sampleRate <= 0 || cutoffFreq <= 0 {
		return dc
	}

	r := 1.0 - 2.0*math.Pi*cutoffFreq/float64(sampleRate)
	switch {
	case r >= 1.0:
		r = 0.999
	case r <= 0.0:
		r = 0.001
	}
	dc.poleLocation = r

	return dc
}

// Process filters one sample
func (dc *DCRemoval) Process(input float64) float64 {
	output := input - dc.x1 + dc.poleLocation*dc.y1
	dc.x1 = input
	dc.y1 = output
	return output
}

// ProcessBuffer filters a whole buffer, carrying state from earlier calls
func (dc *DCRemoval) ProcessBuffer(input []float64) []float64 {
	output := make([]float64, len(input))
	for i, sample := range input {
		output[i] = dc.Process(sample)
	}
	return output
}

// Reset clears the filter state between discontinuous recordings
func (dc *DCRemoval) Reset() {
	dc.x1 = 0.0
	dc.y1 = 0.0
}

// PoleLocation returns R
func (dc *DCRemoval) PoleLocation() float64 {
	return dc.poleLocation
}

// CutoffFrequency inverts the design formula: fc ≈ (1-R)*fs/(2*pi)
func (dc *DCRemoval) CutoffFrequency(sampleRate int) float64 {
	if sampleRate <= 0 {
		return 0.0
	}
	return (1.0 - dc.poleLocation) * float64(sampleRate) / (2.0 * math.Pi)
}

// RemoveDC runs a fresh blocker with the given cutoff over signal. The
// first input sample is taken as the initial state so a constant offset
// does not produce a step at the start.
func RemoveDC(signal []float64, sampleRate int, cutoffFreq float64) []float64 {
	if len(signal) == 0 {
		return []float64{}
	}
	dc := NewDCRemovalWithCutoff(sampleRate, cutoffFreq)
	dc.x1 = signal[0]
	return dc.ProcessBuffer(signal)
}
