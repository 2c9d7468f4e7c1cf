package linguistic

import (
	"github.com/RyanBlaney/sonido-poise/algorithms/text"
)

// DefaultBaselineWPM is the speaking rate used to estimate how long the
// transcript should take to say
const DefaultBaselineWPM = 150.0

// PauseProfile estimates silent time from the gap between the recording
// length and the expected speaking time
type PauseProfile struct {
	EstimatedPauseTime float64 `json:"estimated_pause_time"` // seconds
	PausePercentage    float64 `json:"pause_percentage"`
	ConfidenceImpact   float64 `json:"confidence_impact"` // -20 to +5
}

// AnalyzePauses estimates pause time at the default 150 wpm baseline
func AnalyzePauses(transcript string, duration float64) PauseProfile {
	return AnalyzePausesAt(transcript, duration, DefaultBaselineWPM)
}

// AnalyzePausesAt estimates pause time against baselineWPM. A blank
// transcript yields a zero profile. A zero duration leaves the percentage at
// 0, which still reads as a well-paced (+5) answer.
func AnalyzePausesAt(transcript string, duration, baselineWPM float64) PauseProfile {
	if text.IsBlank(transcript) {
		return PauseProfile{}
	}

	expected := 0.0
	if baselineWPM > 0 {
		expected = float64(text.WordCount(transcript)) / baselineWPM * 60
	}

	pause := max(0, duration-expected)
	percentage := 0.0
	if duration > 0 {
		percentage = pause / duration * 100
	}

	return PauseProfile{
		EstimatedPauseTime: pause,
		PausePercentage:    percentage,
		ConfidenceImpact:   PauseImpact(percentage),
	}
}

// PauseImpact maps the pause percentage to a confidence adjustment:
// <10 +5, <20 0, <30 -10, otherwise -20.
func PauseImpact(percentage float64) float64 {
	switch {
	case percentage < 10:
		return 5
	case percentage < 20:
		return 0
	case percentage < 30:
		return -10
	default:
		return -20
	}
}
