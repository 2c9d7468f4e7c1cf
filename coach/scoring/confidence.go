package scoring

import (
	"github.com/RyanBlaney/sonido-poise/algorithms/common"
)

// Weights of the confidence terms. Scores are centred on 50 so a neutral
// sub-score leaves the baseline untouched.
const (
	confidenceBaseline = 50.0
	neutralScore       = 50.0

	pitchStabilityWeight    = 0.25
	energyConsistencyWeight = 0.20
	speechRateWeight        = 0.15
	voiceFluencyWeight      = 0.10
	fillerPenaltyWeight     = 0.15
	pauseImpactWeight       = 0.10
	stammerPenaltyWeight    = 0.05
)

// Confidence scores vocal confidence on 0-100. Missing profiles count as
// neutral: 50 for 0-100 scores and 0 for impacts and penalties.
func Confidence(dsp DSPResults, text TextResults) float64 {
	stability := neutralScore
	if dsp.Pitch != nil {
		stability = dsp.Pitch.StabilityScore
	}

	consistency := neutralScore
	if dsp.Energy != nil {
		consistency = dsp.Energy.ConsistencyScore
	}

	rateImpact := 0.0
	if dsp.SpeechRate != nil {
		rateImpact = dsp.SpeechRate.ConfidenceImpact
	}

	breakFluency := neutralScore
	if dsp.VoiceBreaks != nil {
		breakFluency = dsp.VoiceBreaks.FluencyScore
	}

	pauseImpact := 0.0
	if text.Pauses != nil {
		pauseImpact = text.Pauses.ConfidenceImpact
	}

	confidence := confidenceBaseline
	confidence += (stability - neutralScore) * pitchStabilityWeight
	confidence += (consistency - neutralScore) * energyConsistencyWeight
	confidence += rateImpact * speechRateWeight
	confidence += (breakFluency - neutralScore) * voiceFluencyWeight
	confidence -= fillerPenalty(text) * fillerPenaltyWeight
	confidence += pauseImpact * pauseImpactWeight
	confidence -= stammerPenalty(text) * stammerPenaltyWeight

	return common.Round(common.Clamp(confidence, 0, 100), 2)
}
