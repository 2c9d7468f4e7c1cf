package common

// PadCenter returns signal with pad zeros on both sides, so that frame i of
// the padded signal is centered on sample i*hop of the original.
func PadCenter(signal []float64, pad int) []float64 {
	if pad <= 0 {
		return signal
	}
	padded := make([]float64, len(signal)+2*pad)
	copy(padded[pad:], signal)
	return padded
}

// FrameCount is the number of whole frames of frameSize spaced hopSize
// apart that fit in n samples.
func FrameCount(n, frameSize, hopSize int) int {
	if frameSize <= 0 || hopSize <= 0 || n < frameSize {
		return 0
	}
	return (n-frameSize)/hopSize + 1
}
