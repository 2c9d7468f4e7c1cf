package scoring

import (
	"github.com/RyanBlaney/sonido-poise/coach/acoustic"
	"github.com/RyanBlaney/sonido-poise/coach/linguistic"
)

// DSPResults bundles the waveform profiles. A nil profile is missing and
// the scorers fall back to neutral values for it.
type DSPResults struct {
	Pitch       *acoustic.PitchProfile      `json:"pitch,omitempty"`
	Energy      *acoustic.EnergyProfile     `json:"energy,omitempty"`
	SpeechRate  *acoustic.SpeechRateProfile `json:"speech_rate,omitempty"`
	VoiceBreaks *acoustic.VoiceBreakProfile `json:"voice_breaks,omitempty"`
}

// TextResults bundles the transcript profiles; nil means missing
type TextResults struct {
	Fillers    *linguistic.FillerProfile  `json:"filler_words,omitempty"`
	Stammering *linguistic.StammerProfile `json:"stammering,omitempty"`
	Pauses     *linguistic.PauseProfile   `json:"pauses,omitempty"`
}

// CompositeScore holds the three bounded delivery scores after calibration
type CompositeScore struct {
	Confidence  float64 `json:"confidence"`
	Nervousness float64 `json:"nervousness"`
	Fluency     float64 `json:"fluency"`
	Calibration string  `json:"calibration"`
}

func fillerPenalty(t TextResults) float64 {
	if t.Fillers == nil {
		return 0
	}
	return t.Fillers.ConfidencePenalty
}

func stammerPenalty(t TextResults) float64 {
	if t.Stammering == nil {
		return 0
	}
	return t.Stammering.FluencyPenalty
}
