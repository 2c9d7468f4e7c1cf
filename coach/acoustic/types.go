package acoustic

// Waveform is a mono signal at a fixed sample rate
type Waveform struct {
	Samples    []float64 `json:"-"`
	SampleRate int       `json:"sample_rate"`
}

// Duration returns the waveform length in seconds, 0 when the sample rate is unset
func (w Waveform) Duration() float64 {
	if w.SampleRate <= 0 {
		return 0
	}
	return float64(len(w.Samples)) / float64(w.SampleRate)
}

// PitchProfile summarizes the voiced f0 track. With no voiced frames every
// field is zero; VoicedFrames tells that case apart from a measured zero.
type PitchProfile struct {
	MeanPitch      float64 `json:"mean_pitch"`      // Hz
	PitchVariance  float64 `json:"pitch_variance"`  // standard deviation, Hz
	PitchRange     float64 `json:"pitch_range"`     // max - min, Hz
	StabilityScore float64 `json:"stability_score"` // 0-100
	VoicedFrames   int     `json:"voiced_frames"`
}

// EnergyProfile summarizes the short-time RMS envelope. An empty or silent
// waveform yields all zeros.
type EnergyProfile struct {
	MeanEnergy       float64 `json:"mean_energy"`
	EnergyVariance   float64 `json:"energy_variance"` // standard deviation of the RMS frames
	MaxEnergy        float64 `json:"max_energy"`
	MinEnergy        float64 `json:"min_energy"`
	ConsistencyScore float64 `json:"consistency_score"` // 0-100
}

// VoiceBreakProfile counts energy dropouts. A waveform without breaks has
// FluencyScore 100; a zero-length one has no breaks and rate 0.
type VoiceBreakProfile struct {
	TotalBreaks     int     `json:"total_breaks"`
	BreaksPerMinute float64 `json:"breaks_per_minute"`
	FluencyScore    float64 `json:"fluency_score"` // 0-100
}

// RateCategory buckets words per minute
type RateCategory string

const (
	RateSlow     RateCategory = "slow"
	RateModerate RateCategory = "moderate"
	RateOptimal  RateCategory = "optimal"
	RateFast     RateCategory = "fast"
)

// SpeechRateProfile estimates speaking rate from onset density
type SpeechRateProfile struct {
	WordsPerMinute   float64      `json:"words_per_minute"`
	SyllableCount    int          `json:"syllable_count"`
	RateCategory     RateCategory `json:"rate_category"`
	ConfidenceImpact float64      `json:"confidence_impact"` // -15 to +10
}
