package temporal

import (
	"github.com/RyanBlaney/sonido-poise/algorithms/common"
	"github.com/RyanBlaney/sonido-poise/algorithms/spectral"
	"github.com/RyanBlaney/sonido-poise/algorithms/windowing"
)

// PeakPickParams controls onset peak picking. Durations are in seconds and
// converted to frames with the detector's hop size.
type PeakPickParams struct {
	PreMax  float64 `json:"pre_max" yaml:"pre_max"`   // look-back for the local max
	PostMax float64 `json:"post_max" yaml:"post_max"` // look-ahead for the local max
	PreAvg  float64 `json:"pre_avg" yaml:"pre_avg"`   // look-back for the local mean
	PostAvg float64 `json:"post_avg" yaml:"post_avg"` // look-ahead for the local mean
	Delta   float64 `json:"delta" yaml:"delta"`       // margin above the local mean
	Wait    float64 `json:"wait" yaml:"wait"`         // minimum gap between onsets
}

// DefaultPeakPickParams returns the peak picking used for syllable counting
func DefaultPeakPickParams() PeakPickParams {
	return PeakPickParams{
		PreMax:  0.03,
		PostMax: 0.0,
		PreAvg:  0.10,
		PostAvg: 0.10,
		Delta:   0.07,
		Wait:    0.03,
	}
}

// OnsetDetection finds abrupt energy increases with a log-mel spectral flux
// novelty curve followed by adaptive peak picking.
type OnsetDetection struct {
	sampleRate int
	frameSize  int
	hopSize    int
	params     PeakPickParams

	stft    *spectral.STFT
	window  *windowing.Hann
	melBank *spectral.MelFilterBank
}

// NewOnsetDetection creates an onset detector for the given framing
func NewOnsetDetection(sampleRate, frameSize, hopSize, melBands int, params PeakPickParams) *OnsetDetection {
	return &OnsetDetection{
		sampleRate: sampleRate,
		frameSize:  frameSize,
		hopSize:    hopSize,
		params:     params,
		stft:       spectral.NewSTFT(),
		window:     windowing.NewHann(frameSize, false),
		melBank:    spectral.NewMelFilterBank(melBands, frameSize, sampleRate, 0, 0),
	}
}

// OnsetEnvelope returns the normalized (0-1) onset strength per STFT frame.
// A flat envelope, silence included, comes back as all zeros.
func (od *OnsetDetection) OnsetEnvelope(signal []float64) ([]float64, error) {
	if len(signal) == 0 {
		return []float64{}, nil
	}

	stftResult, err := od.stft.Compute(signal, od.frameSize, od.hopSize, od.sampleRate, od.window, true)
	if err != nil {
		return nil, err
	}

	melDB := spectral.PowerToDB(od.melBank.ApplyFrames(stftResult.PowerSpectrogram()), 1e-10, 80.0)
	strength := spectral.OnsetStrength(melDB)

	lo, hi := common.Min(strength), common.Max(strength)
	if hi-lo <= 0 {
		return make([]float64, len(strength)), nil
	}
	for i := range strength {
		strength[i] = (strength[i] - lo) / (hi - lo)
	}

	return strength, nil
}

// DetectOnsets returns onset times in seconds
func (od *OnsetDetection) DetectOnsets(signal []float64) ([]float64, error) {
	envelope, err := od.OnsetEnvelope(signal)
	if err != nil {
		return nil, err
	}

	frames := PeakPick(envelope,
		od.toFrames(od.params.PreMax, 1), od.toFrames(od.params.PostMax, 1)+1,
		od.toFrames(od.params.PreAvg, 0), od.toFrames(od.params.PostAvg, 0)+1,
		od.params.Delta, od.toFrames(od.params.Wait, 1))

	times := make([]float64, len(frames))
	for i, f := range frames {
		times[i] = float64(f*od.hopSize) / float64(od.sampleRate)
	}
	return times, nil
}

// toFrames converts seconds to whole frames, never below minFrames
func (od *OnsetDetection) toFrames(seconds float64, minFrames int) int {
	if od.hopSize <= 0 {
		return minFrames
	}
	return max(minFrames, int(seconds*float64(od.sampleRate)/float64(od.hopSize)))
}

// PeakPick selects frames n where x[n] is the maximum of x[n-preMax, n+postMax),
// x[n] >= mean(x[n-preAvg, n+postAvg)) + delta, and more than wait frames
// have passed since the previous pick.
func PeakPick(x []float64, preMax, postMax, preAvg, postAvg int, delta float64, wait int) []int {
	peaks := []int{}
	last := -1

	for n := range x {
		maxLo, maxHi := max(0, n-preMax), min(len(x), n+postMax)
		if x[n] < common.Max(x[maxLo:maxHi]) {
			continue
		}

		avgLo, avgHi := max(0, n-preAvg), min(len(x), n+postAvg)
		if x[n] < common.Mean(x[avgLo:avgHi])+delta {
			continue
		}

		if last >= 0 && n-last <= wait {
			continue
		}

		peaks = append(peaks, n)
		last = n
	}

	return peaks
}
