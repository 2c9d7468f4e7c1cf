package tonal

import (
	"math"
	"math/cmplx"

	"github.com/RyanBlaney/sonido-poise/algorithms/common"
	"github.com/RyanBlaney/sonido-poise/algorithms/spectral"
)

// PitchFrame is the f0 estimate of one analysis frame. Frequency is 0 for
// unvoiced or silent frames.
type PitchFrame struct {
	Frequency float64 `json:"frequency"` // Hz
	Salience  float64 `json:"salience"`  // 1 - normalized difference at the chosen lag (0-1)
}

// Voiced reports whether the frame carries a pitch
func (p PitchFrame) Voiced() bool {
	return p.Frequency > 0
}

// PitchDetectionParams contains parameters for pitch tracking
type PitchDetectionParams struct {
	SampleRate   int     `json:"sample_rate"`
	FrameSize    int     `json:"frame_size"`
	HopSize      int     `json:"hop_size"`
	MinFreq      float64 `json:"min_freq"`      // lowest f0 searched (Hz)
	MaxFreq      float64 `json:"max_freq"`      // highest f0 searched (Hz)
	YinThreshold float64 `json:"yin_threshold"` // absolute threshold on the CMNDF (0.1-0.5)
	SilenceFloor float64 `json:"silence_floor"` // frame RMS below this is unvoiced
}

// DefaultPitchDetectionParams returns parameters tuned for speech at sampleRate
func DefaultPitchDetectionParams(sampleRate int) PitchDetectionParams {
	return PitchDetectionParams{
		SampleRate:   sampleRate,
		FrameSize:    2048,
		HopSize:      512,
		MinFreq:      65.0,   // low male voice
		MaxFreq:      1000.0, // high female voice and falsetto
		YinThreshold: 0.15,
		SilenceFloor: 1e-4,
	}
}

// PitchDetector tracks the fundamental frequency frame by frame with YIN.
// The difference function is evaluated through an FFT cross-correlation so
// each frame costs O(n log n) instead of O(n * maxLag).
//
// References:
// - de Cheveigné, A., Kawahara, H. (2002). "YIN, a fundamental frequency estimator for speech and music"
//
// The detector holds no per-signal state; Track can be called concurrently.
type PitchDetector struct {
	params PitchDetectionParams
	fft    *spectral.FFT
}

// NewPitchDetector creates a pitch detector with speech defaults
func NewPitchDetector(sampleRate int) *PitchDetector {
	return NewPitchDetectorWithParams(DefaultPitchDetectionParams(sampleRate))
}

// NewPitchDetectorWithParams creates a pitch detector with custom parameters
func NewPitchDetectorWithParams(params PitchDetectionParams) *PitchDetector {
	return &PitchDetector{
		params: params,
		fft:    spectral.NewFFT(),
	}
}

// Parameters returns the detector configuration
func (pd *PitchDetector) Parameters() PitchDetectionParams {
	return pd.params
}

// Track runs the detector over centered frames of signal and returns one
// PitchFrame per frame (1 + len(signal)/hop frames).
func (pd *PitchDetector) Track(signal []float64) []PitchFrame {
	if len(signal) == 0 || pd.params.FrameSize <= 0 || pd.params.HopSize <= 0 {
		return []PitchFrame{}
	}

	padded := common.PadCenter(signal, pd.params.FrameSize/2)
	numFrames := common.FrameCount(len(padded), pd.params.FrameSize, pd.params.HopSize)

	frames := make([]PitchFrame, numFrames)
	for i := range numFrames {
		start := i * pd.params.HopSize
		frames[i] = pd.DetectFrame(padded[start : start+pd.params.FrameSize])
	}

	return frames
}

// VoicedPitches returns the frequencies of the voiced frames only
func VoicedPitches(frames []PitchFrame) []float64 {
	pitches := make([]float64, 0, len(frames))
	for _, f := range frames {
		if f.Voiced() {
			pitches = append(pitches, f.Frequency)
		}
	}
	return pitches
}

// lagRange returns the [minLag, maxLag] search range for a frame of n samples
func (pd *PitchDetector) lagRange(n int) (int, int) {
	sr := float64(pd.params.SampleRate)
	minLag := max(2, int(math.Floor(sr/pd.params.MaxFreq)))
	maxLag := min(n/2, int(math.Ceil(sr/pd.params.MinFreq)))
	return minLag, maxLag
}

// DetectFrame estimates the pitch of a single frame
func (pd *PitchDetector) DetectFrame(frame []float64) PitchFrame {
	if pd.params.SampleRate <= 0 || common.RMS(frame) < pd.params.SilenceFloor {
		return PitchFrame{}
	}

	minLag, maxLag := pd.lagRange(len(frame))
	if maxLag <= minLag+1 {
		return PitchFrame{}
	}

	cmndf := pd.cumulativeMeanNormalizedDifference(frame, maxLag)

	// first dip under the threshold, followed down to its local minimum;
	// later dips at multiples of the period are sub-harmonics
	lag := -1
	for tau := minLag; tau < maxLag; tau++ {
		if cmndf[tau] < pd.params.YinThreshold {
			for tau+1 < maxLag && cmndf[tau+1] < cmndf[tau] {
				tau++
			}
			lag = tau
			break
		}
	}
	if lag < 0 {
		return PitchFrame{}
	}

	period := parabolicInterpolation(cmndf, lag)
	if period <= 0 {
		return PitchFrame{}
	}

	frequency := float64(pd.params.SampleRate) / period
	if frequency < pd.params.MinFreq || frequency > pd.params.MaxFreq {
		return PitchFrame{}
	}

	return PitchFrame{
		Frequency: frequency,
		Salience:  common.Clamp(1.0-cmndf[lag], 0, 1),
	}
}

// cumulativeMeanNormalizedDifference computes YIN's d'(tau) for tau in [0, maxLag].
//
//	d(tau) = sum_{j<W} (x[j] - x[j+tau])^2,  W = n - maxLag
//	       = e(0) + e(tau) - 2 r(tau)
//
// where e(tau) is the energy of x[tau:tau+W] and r the cross-correlation of
// x[:W] with x.
func (pd *PitchDetector) cumulativeMeanNormalizedDifference(frame []float64, maxLag int) []float64 {
	n := len(frame)
	w := n - maxLag

	// prefix sums of squares for the sliding energy term
	prefix := make([]float64, n+1)
	for i, v := range frame {
		prefix[i+1] = prefix[i] + v*v
	}

	size := common.NextPowerOfTwo(n + w)
	a := make([]float64, size)
	b := make([]float64, size)
	copy(a, frame[:w])
	copy(b, frame)

	specA := pd.fft.Compute(a)
	specB := pd.fft.Compute(b)
	product := make([]complex128, size)
	for k := range size {
		product[k] = cmplx.Conj(specA[k]) * specB[k]
	}
	corr := pd.fft.ComputeInverseReal(product)

	e0 := prefix[w]
	cmndf := make([]float64, maxLag+1)
	cmndf[0] = 1.0
	runningSum := 0.0
	for tau := 1; tau <= maxLag; tau++ {
		eTau := prefix[tau+w] - prefix[tau]
		d := math.Max(0, e0+eTau-2*corr[tau])
		runningSum += d
		if runningSum <= 0 {
			cmndf[tau] = 1.0
			continue
		}
		cmndf[tau] = d * float64(tau) / runningSum
	}

	return cmndf
}

// parabolicInterpolation refines a minimum location using its neighbours
func parabolicInterpolation(data []float64, idx int) float64 {
	if idx <= 0 || idx >= len(data)-1 {
		return float64(idx)
	}

	y1 := data[idx-1]
	y2 := data[idx]
	y3 := data[idx+1]

	a := (y1 - 2*y2 + y3) / 2
	b := (y3 - y1) / 2

	if a == 0 {
		return float64(idx)
	}

	offset := -b / (2 * a)
	// a sound parabola vertex never leaves the bracketing samples
	if math.Abs(offset) > 1 {
		return float64(idx)
	}

	return float64(idx) + offset
}
