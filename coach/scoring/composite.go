package scoring

import (
	"github.com/RyanBlaney/sonido-poise/algorithms/common"
	"github.com/RyanBlaney/sonido-poise/coach/config"
)

// fluencyFloor is the lowest composite fluency ever reported
const fluencyFloor = 40.0

// Calibrate rescales raw scores by the policy multipliers, clamped to
// 0-100 and rounded to 2 decimals
func Calibrate(policy config.CalibrationPolicy, confidence, nervousness float64) (float64, float64) {
	return common.Round(common.Clamp(confidence*policy.ConfidenceMultiplier, 0, 100), 2),
		common.Round(common.Clamp(nervousness*policy.NervousnessMultiplier, 0, 100), 2)
}

// Fluency derives the composite fluency score from a nervousness score:
// max(40, (100 - nervousness) - (filler penalty*0.15 + stammer penalty*0.25))
func Fluency(nervousness float64, text TextResults) float64 {
	fluency := (100 - nervousness) - (fillerPenalty(text)*0.15 + stammerPenalty(text)*0.25)
	return common.Round(common.Clamp(fluency, fluencyFloor, 100), 2)
}

// Compose scores both bundles, applies the calibration policy and derives
// fluency from the calibrated nervousness
func Compose(policy config.CalibrationPolicy, dsp DSPResults, text TextResults) CompositeScore {
	confidence, nervousness := Calibrate(policy, Confidence(dsp, text), Nervousness(dsp, text))

	return CompositeScore{
		Confidence:  confidence,
		Nervousness: nervousness,
		Fluency:     Fluency(nervousness, text),
		Calibration: policy.Name,
	}
}
