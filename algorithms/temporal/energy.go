package temporal

import (
	"github.com/RyanBlaney/sonido-poise/algorithms/common"
)

// Energy computes the short-time RMS envelope used as a loudness proxy
type Energy struct {
	frameSize int
	hopSize   int
	center    bool
}

// NewEnergy creates a new energy calculator. With center set the signal is
// zero padded by frameSize/2 on each side before framing.
func NewEnergy(frameSize, hopSize int, center bool) *Energy {
	return &Energy{
		frameSize: frameSize,
		hopSize:   hopSize,
		center:    center,
	}
}

// ComputeShortTimeEnergy returns the RMS of every frame. The result is
// empty for an empty signal or invalid frame geometry.
func (e *Energy) ComputeShortTimeEnergy(signal []float64) []float64 {
	if len(signal) == 0 || e.hopSize <= 0 || e.frameSize <= 0 {
		return []float64{}
	}

	if e.center {
		signal = common.PadCenter(signal, e.frameSize/2)
	}

	numFrames := common.FrameCount(len(signal), e.frameSize, e.hopSize)
	energies := make([]float64, numFrames)

	for i := range numFrames {
		startIdx := i * e.hopSize
		energies[i] = common.RMS(signal[startIdx : startIdx+e.frameSize])
	}

	return energies
}

// CountFallingEdges counts transitions from strictly above threshold to
// strictly below it. Frames that stay low after the first drop, and rises
// back above the threshold, are not counted.
func CountFallingEdges(envelope []float64, threshold float64) int {
	count := 0
	for i := 1; i < len(envelope); i++ {
		if envelope[i-1] > threshold && envelope[i] < threshold {
			count++
		}
	}
	return count
}
