package spectral

// OnsetStrength computes a spectral-flux novelty curve from a (log-scaled)
// spectrogram: for each frame the mean over bands of the positive increase
// relative to the previous frame. The output has one value per input frame,
// the first frame being 0, so indices line up with STFT frames.
func OnsetStrength(spectrogram [][]float64) []float64 {
	strength := make([]float64, len(spectrogram))
	if len(spectrogram) < 2 {
		return strength
	}

	for t := 1; t < len(spectrogram); t++ {
		bands := min(len(spectrogram[t]), len(spectrogram[t-1]))
		if bands == 0 {
			continue
		}
		sum := 0.0
		for f := range bands {
			diff := spectrogram[t][f] - spectrogram[t-1][f]
			if diff > 0 { // only energy increases mark an onset
				sum += diff
			}
		}
		strength[t] = sum / float64(bands)
	}

	return strength
}
