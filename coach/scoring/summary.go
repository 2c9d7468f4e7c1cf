package scoring

import (
	"github.com/RyanBlaney/sonido-poise/coach/acoustic"
)

// Thresholds for the summary notes
const (
	steadyScore     = 70.0
	fillerRateLimit = 5.0
)

// Summary is the coaching digest of one answer
type Summary struct {
	Scores          CompositeScore        `json:"scores"`
	WordsPerMinute  float64               `json:"words_per_minute"`
	RateCategory    acoustic.RateCategory `json:"rate_category,omitempty"`
	FillerCount     int                   `json:"filler_count"`
	StammerCount    int                   `json:"stammer_count"`
	PausePercentage float64               `json:"pause_percentage"`
	Strengths       []string              `json:"strengths"`
	Improvements    []string              `json:"improvements"`
}

// Summarize turns the scores and profiles into headline numbers and ordered
// strength and improvement notes. Missing profiles produce no notes.
func Summarize(scores CompositeScore, dsp DSPResults, text TextResults) Summary {
	s := Summary{
		Scores:       scores,
		Strengths:    []string{},
		Improvements: []string{},
	}

	note := func(good bool, strength, improvement string) {
		if good {
			s.Strengths = append(s.Strengths, strength)
		} else {
			s.Improvements = append(s.Improvements, improvement)
		}
	}

	if p := dsp.Pitch; p != nil && p.VoicedFrames > 0 {
		note(p.StabilityScore >= steadyScore,
			"Steady, controlled pitch",
			"Pitch wavers; settle into a comfortable speaking tone")
	}

	if e := dsp.Energy; e != nil && e.MeanEnergy > 0 {
		note(e.ConsistencyScore >= steadyScore,
			"Consistent vocal projection",
			"Volume drifts; keep your projection even through each sentence")
	}

	if r := dsp.SpeechRate; r != nil {
		s.WordsPerMinute = r.WordsPerMinute
		s.RateCategory = r.RateCategory
		switch r.RateCategory {
		case acoustic.RateOptimal:
			s.Strengths = append(s.Strengths, "Well-paced delivery")
		case acoustic.RateSlow:
			s.Improvements = append(s.Improvements, "Pick up the pace slightly")
		case acoustic.RateFast:
			s.Improvements = append(s.Improvements, "Slow down and let key points land")
		}
	}

	if f := text.Fillers; f != nil {
		s.FillerCount = f.FillerCount
		note(f.FillerRate < fillerRateLimit,
			"Few filler words",
			"Replace filler words with a short pause")
	}

	if st := text.Stammering; st != nil {
		s.StammerCount = st.StammerCount
		note(st.StammerCount == 0,
			"Smooth, uninterrupted phrasing",
			"Repeated words break the flow; slow down at the start of sentences")
	}

	if p := text.Pauses; p != nil {
		s.PausePercentage = p.PausePercentage
		switch {
		case p.ConfidenceImpact > 0:
			s.Strengths = append(s.Strengths, "Natural use of pauses")
		case p.ConfidenceImpact < 0:
			s.Improvements = append(s.Improvements, "Long silences; keep the answer moving")
		}
	}

	return s
}
