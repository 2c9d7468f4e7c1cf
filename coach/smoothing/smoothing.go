package smoothing

import (
	"github.com/RyanBlaney/sonido-poise/algorithms/common"
)

// Default window sizes for live sessions
const (
	DefaultLabelWindow = 10
	DefaultScoreWindow = 30
)

// MajorityVote pushes v and returns the most frequent value in the window.
// Ties go to the value that appears earliest in the window.
func MajorityVote[T comparable](h *History[T], v T) T {
	h.Push(v)

	values := h.Values()
	counts := make(map[T]int, len(values))
	for _, x := range values {
		counts[x]++
	}

	best := values[0]
	for _, x := range values {
		if counts[x] > counts[best] {
			best = x
		}
	}
	return best
}

// RollingMean pushes v and returns the mean of the window
func RollingMean(h *History[float64], v float64) float64 {
	h.Push(v)
	return common.Mean(h.Values())
}
