package acoustic

import (
	"fmt"

	"github.com/RyanBlaney/sonido-poise/algorithms/temporal"
	"github.com/RyanBlaney/sonido-poise/coach/config"
	"github.com/RyanBlaney/sonido-poise/logging"
)

// SpeechRateAnalyzer estimates words per minute from syllable onsets
type SpeechRateAnalyzer struct {
	onsets           *temporal.OnsetDetection
	syllablesPerWord float64
	logger           logging.Logger
}

// NewSpeechRateAnalyzer creates a speech-rate analyzer from the analysis configuration
func NewSpeechRateAnalyzer(cfg *config.AnalysisConfig) *SpeechRateAnalyzer {
	return &SpeechRateAnalyzer{
		onsets: temporal.NewOnsetDetection(
			cfg.SampleRate, cfg.FrameSize, cfg.HopSize,
			cfg.SpeechRate.MelBands, cfg.SpeechRate.PeakPick),
		syllablesPerWord: cfg.SpeechRate.SyllablesPerWord,
		logger: logging.WithFields(logging.Fields{
			"component": "speech_rate_analyzer",
		}),
	}
}

// Analyze counts onsets as syllables and converts them to words per minute.
// An error is only returned for an unusable frame geometry; silence and
// empty input produce 0 wpm, which classifies as slow.
func (a *SpeechRateAnalyzer) Analyze(w Waveform) (SpeechRateProfile, error) {
	onsets, err := a.onsets.DetectOnsets(w.Samples)
	if err != nil {
		return SpeechRateProfile{}, fmt.Errorf("detect onsets: %w", err)
	}

	syllables := len(onsets)
	words := float64(syllables) / a.syllablesPerWord

	duration := w.Duration()
	wpm := 0.0
	if duration > 0 {
		wpm = words / duration * 60
	}

	category, impact := ClassifyRate(wpm)
	profile := SpeechRateProfile{
		WordsPerMinute:   wpm,
		SyllableCount:    syllables,
		RateCategory:     category,
		ConfidenceImpact: impact,
	}

	a.logger.Debug("Speech rate analyzed", logging.Fields{
		"syllables":        syllables,
		"words_per_minute": wpm,
		"category":         category,
	})

	return profile, nil
}

// ClassifyRate maps words per minute to a category and confidence impact:
//
//	wpm < 100          slow      -10
//	120 <= wpm <= 160  optimal   +10
//	wpm > 180          fast      -15
//	otherwise          moderate    0
//
// Both gaps, [100, 120) and (160, 180], are moderate.
func ClassifyRate(wpm float64) (RateCategory, float64) {
	switch {
	case wpm < 100:
		return RateSlow, -10
	case wpm >= 120 && wpm <= 160:
		return RateOptimal, 10
	case wpm > 180:
		return RateFast, -15
	default:
		return RateModerate, 0
	}
}
