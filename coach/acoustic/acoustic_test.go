package acoustic

import (
	"math"
	"testing"

	"github.com/RyanBlaney/sonido-poise/coach/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = config.SampleRate

func tone(freq, amp, seconds float64) []float64 {
	out := make([]float64, int(seconds*testRate))
	for i := range out {
		out[i] = amp * math.Sin(2*math.Pi*freq*float64(i)/testRate)
	}
	return out
}

func silence(seconds float64) []float64 {
	return make([]float64, int(seconds*testRate))
}

func waveform(parts ...[]float64) Waveform {
	var samples []float64
	for _, p := range parts {
		samples = append(samples, p...)
	}
	return Waveform{Samples: samples, SampleRate: testRate}
}

func TestWaveformDuration(t *testing.T) {
	assert.Equal(t, 2.0, waveform(silence(2)).Duration())
	assert.Zero(t, Waveform{Samples: make([]float64, 10)}.Duration())
	assert.Zero(t, Waveform{SampleRate: testRate}.Duration())
}

func TestSilentAndEmptyWaveforms(t *testing.T) {
	cfg := config.DefaultAnalysisConfig()

	for name, w := range map[string]Waveform{
		"silence": waveform(silence(1)),
		"empty":   {SampleRate: testRate},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, PitchProfile{}, NewPitchAnalyzer(cfg).Analyze(w))
			assert.Equal(t, EnergyProfile{}, NewEnergyAnalyzer(cfg).Analyze(w))

			breaks := NewVoiceBreakDetector(cfg).Analyze(w)
			assert.Zero(t, breaks.TotalBreaks)
			assert.Zero(t, breaks.BreaksPerMinute)
			assert.Equal(t, 100.0, breaks.FluencyScore)

			rate, err := NewSpeechRateAnalyzer(cfg).Analyze(w)
			require.NoError(t, err)
			assert.Zero(t, rate.WordsPerMinute)
			assert.Zero(t, rate.SyllableCount)
			assert.Equal(t, RateSlow, rate.RateCategory)
			assert.Equal(t, -10.0, rate.ConfidenceImpact)
		})
	}
}

func TestPitchAnalyzerSteadyTone(t *testing.T) {
	profile := NewPitchAnalyzer(config.DefaultAnalysisConfig()).Analyze(waveform(tone(200, 0.5, 1)))

	require.Positive(t, profile.VoicedFrames)
	assert.InDelta(t, 200.0, profile.MeanPitch, 5.0)
	assert.Greater(t, profile.StabilityScore, 90.0)
	assert.LessOrEqual(t, profile.StabilityScore, 100.0)
}

func TestPitchAnalyzerGlideIsLessStable(t *testing.T) {
	cfg := config.DefaultAnalysisConfig()

	// two held notes an octave apart
	glide := waveform(tone(150, 0.5, 0.5), tone(300, 0.5, 0.5))
	steady := waveform(tone(150, 0.5, 1))

	a := NewPitchAnalyzer(cfg)
	assert.Less(t, a.Analyze(glide).StabilityScore, a.Analyze(steady).StabilityScore)
	assert.Greater(t, a.Analyze(glide).PitchRange, 100.0)
}

func TestEnergyAnalyzer(t *testing.T) {
	cfg := config.DefaultAnalysisConfig()
	a := NewEnergyAnalyzer(cfg)

	steady := a.Analyze(waveform(tone(220, 0.5, 2)))
	assert.InDelta(t, 0.5/math.Sqrt2, steady.MaxEnergy, 0.01)
	assert.Greater(t, steady.ConsistencyScore, 80.0)
	assert.LessOrEqual(t, steady.MinEnergy, steady.MeanEnergy)

	uneven := a.Analyze(waveform(tone(220, 0.5, 1), tone(220, 0.05, 1)))
	assert.Less(t, uneven.ConsistencyScore, steady.ConsistencyScore)
	assert.GreaterOrEqual(t, uneven.ConsistencyScore, 0.0)
}

func TestVoiceBreakDetector(t *testing.T) {
	cfg := config.DefaultAnalysisConfig()
	d := NewVoiceBreakDetector(cfg)

	t.Run("single dropout", func(t *testing.T) {
		profile := d.Analyze(waveform(tone(220, 0.5, 5), silence(5)))
		assert.Equal(t, 1, profile.TotalBreaks)
		assert.InDelta(t, 6.0, profile.BreaksPerMinute, 1e-9)
		assert.InDelta(t, 40.0, profile.FluencyScore, 1e-9)
	})

	t.Run("repeated dropouts floor at zero", func(t *testing.T) {
		w := waveform(
			tone(220, 0.5, 0.5), silence(0.5),
			tone(220, 0.5, 0.5), silence(0.5),
			tone(220, 0.5, 0.5), silence(0.5),
		)
		profile := d.Analyze(w)
		assert.Equal(t, 3, profile.TotalBreaks)
		assert.InDelta(t, 60.0, profile.BreaksPerMinute, 1e-9)
		assert.Zero(t, profile.FluencyScore)
	})

	t.Run("recovery is not a break", func(t *testing.T) {
		profile := d.Analyze(waveform(silence(2), tone(220, 0.5, 2)))
		assert.Zero(t, profile.TotalBreaks)
		assert.Equal(t, 100.0, profile.FluencyScore)
	})
}

func TestSpeechRateAnalyzer(t *testing.T) {
	var parts [][]float64
	for range 8 {
		parts = append(parts, tone(220, 0.5, 0.15), silence(0.2))
	}
	w := waveform(parts...)

	profile, err := NewSpeechRateAnalyzer(config.DefaultAnalysisConfig()).Analyze(w)
	require.NoError(t, err)

	require.Positive(t, profile.SyllableCount)
	want := float64(profile.SyllableCount) / 1.5 / w.Duration() * 60
	assert.InDelta(t, want, profile.WordsPerMinute, 1e-9)

	category, impact := ClassifyRate(profile.WordsPerMinute)
	assert.Equal(t, category, profile.RateCategory)
	assert.Equal(t, impact, profile.ConfidenceImpact)
}

func TestClassifyRate(t *testing.T) {
	tests := []struct {
		wpm      float64
		category RateCategory
		impact   float64
	}{
		{wpm: 0, category: RateSlow, impact: -10},
		{wpm: 99.9, category: RateSlow, impact: -10},
		{wpm: 100, category: RateModerate, impact: 0},
		{wpm: 119.9, category: RateModerate, impact: 0},
		{wpm: 120, category: RateOptimal, impact: 10},
		{wpm: 160, category: RateOptimal, impact: 10},
		{wpm: 161, category: RateModerate, impact: 0},
		{wpm: 180, category: RateModerate, impact: 0},
		{wpm: 181, category: RateFast, impact: -15},
	}

	for _, tt := range tests {
		category, impact := ClassifyRate(tt.wpm)
		assert.Equal(t, tt.category, category, "wpm %.1f", tt.wpm)
		assert.Equal(t, tt.impact, impact, "wpm %.1f", tt.wpm)
	}
}

func TestAnalyzersAreIdempotent(t *testing.T) {
	cfg := config.DefaultAnalysisConfig()
	w := waveform(tone(180, 0.4, 0.6), silence(0.3), tone(240, 0.3, 0.6))

	pitch := NewPitchAnalyzer(cfg)
	assert.Equal(t, pitch.Analyze(w), pitch.Analyze(w))

	energy := NewEnergyAnalyzer(cfg)
	assert.Equal(t, energy.Analyze(w), energy.Analyze(w))

	breaks := NewVoiceBreakDetector(cfg)
	assert.Equal(t, breaks.Analyze(w), breaks.Analyze(w))

	rate := NewSpeechRateAnalyzer(cfg)
	first, err := rate.Analyze(w)
	require.NoError(t, err)
	second, err := rate.Analyze(w)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
