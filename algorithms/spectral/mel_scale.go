package spectral

import (
	"math"
)

// HzToMel converts frequency in Hz to the HTK mel scale
func HzToMel(hz float64) float64 {
	return 2595.0 * math.Log10(1.0+hz/700.0)
}

// MelToHz converts HTK mel back to Hz
func MelToHz(mel float64) float64 {
	return 700.0 * (math.Pow(10.0, mel/2595.0) - 1.0)
}

// MelFilterBank is a bank of triangular filters over the positive FFT bins.
// Triangles are evaluated at each bin's exact center frequency, so narrow
// low-frequency filters at high mel counts never collapse to zero width.
type MelFilterBank struct {
	filters [][]float64
}

// NewMelFilterBank builds numFilters triangles spaced evenly on the mel
// scale between lowFreq and highFreq (highFreq <= 0 means Nyquist).
func NewMelFilterBank(numFilters, fftSize, sampleRate int, lowFreq, highFreq float64) *MelFilterBank {
	if numFilters <= 0 || fftSize <= 0 || sampleRate <= 0 {
		return &MelFilterBank{}
	}

	nyquist := float64(sampleRate) / 2
	if highFreq <= 0 || highFreq > nyquist {
		highFreq = nyquist
	}

	lowMel := HzToMel(lowFreq)
	highMel := HzToMel(highFreq)

	edges := make([]float64, numFilters+2)
	melStep := (highMel - lowMel) / float64(numFilters+1)
	for i := range edges {
		edges[i] = MelToHz(lowMel + float64(i)*melStep)
	}

	numBins := fftSize/2 + 1
	binHz := float64(sampleRate) / float64(fftSize)

	filters := make([][]float64, numFilters)
	for m := range numFilters {
		left, center, right := edges[m], edges[m+1], edges[m+2]
		filters[m] = make([]float64, numBins)
		for k := range numBins {
			f := float64(k) * binHz
			var w float64
			switch {
			case f > left && f <= center:
				w = (f - left) / (center - left)
			case f > center && f < right:
				w = (right - f) / (right - center)
			}
			filters[m][k] = w
		}
	}

	return &MelFilterBank{filters: filters}
}

// NumFilters returns the number of mel bands
func (b *MelFilterBank) NumFilters() int {
	return len(b.filters)
}

// Apply projects one power spectrum frame onto the mel bands
func (b *MelFilterBank) Apply(powerSpectrum []float64) []float64 {
	mel := make([]float64, len(b.filters))
	for i, filter := range b.filters {
		sum := 0.0
		for k := 0; k < len(filter) && k < len(powerSpectrum); k++ {
			sum += powerSpectrum[k] * filter[k]
		}
		mel[i] = sum
	}
	return mel
}

// ApplyFrames projects a whole power spectrogram
func (b *MelFilterBank) ApplyFrames(powerSpectrogram [][]float64) [][]float64 {
	out := make([][]float64, len(powerSpectrogram))
	for t, frame := range powerSpectrogram {
		out[t] = b.Apply(frame)
	}
	return out
}

// PowerToDB converts a power spectrogram to decibels (ref 1.0). Values are
// floored at amin and then at (global max - topDB) when topDB > 0.
func PowerToDB(power [][]float64, amin, topDB float64) [][]float64 {
	db := make([][]float64, len(power))
	peak := math.Inf(-1)
	for t, frame := range power {
		db[t] = make([]float64, len(frame))
		for k, p := range frame {
			v := 10.0 * math.Log10(math.Max(amin, p))
			db[t][k] = v
			peak = math.Max(peak, v)
		}
	}

	if topDB > 0 && !math.IsInf(peak, -1) {
		floor := peak - topDB
		for t := range db {
			for k := range db[t] {
				db[t][k] = math.Max(db[t][k], floor)
			}
		}
	}

	return db
}
