package acoustic

import (
	"math"

	"github.com/RyanBlaney/sonido-poise/algorithms/common"
	"github.com/RyanBlaney/sonido-poise/algorithms/temporal"
	"github.com/RyanBlaney/sonido-poise/coach/config"
	"github.com/RyanBlaney/sonido-poise/logging"
)

// VoiceBreakDetector counts moments where the voice drops out mid-answer
type VoiceBreakDetector struct {
	energy         *temporal.Energy
	thresholdRatio float64
	logger         logging.Logger
}

// NewVoiceBreakDetector creates a detector from the analysis configuration
func NewVoiceBreakDetector(cfg *config.AnalysisConfig) *VoiceBreakDetector {
	return &VoiceBreakDetector{
		energy:         temporal.NewEnergy(cfg.FrameSize, cfg.HopSize, true),
		thresholdRatio: cfg.VoiceBreaks.ThresholdRatio,
		logger: logging.WithFields(logging.Fields{
			"component": "voice_break_detector",
		}),
	}
}

// Analyze counts falling edges of the RMS envelope through
// mean(RMS)*thresholdRatio. Only the drop counts: a run of quiet frames is
// one break, and recovering above the threshold is not penalized.
func (d *VoiceBreakDetector) Analyze(w Waveform) VoiceBreakProfile {
	rms := d.energy.ComputeShortTimeEnergy(w.Samples)
	threshold := common.Mean(rms) * d.thresholdRatio
	breaks := temporal.CountFallingEdges(rms, threshold)

	duration := w.Duration()
	breaksPerMinute := 0.0
	if duration > 0 {
		breaksPerMinute = float64(breaks) / duration * 60
	}

	profile := VoiceBreakProfile{
		TotalBreaks:     breaks,
		BreaksPerMinute: breaksPerMinute,
		FluencyScore:    math.Max(0, 100-breaksPerMinute*10),
	}

	d.logger.Debug("Voice breaks analyzed", logging.Fields{
		"threshold":         threshold,
		"total_breaks":      profile.TotalBreaks,
		"breaks_per_minute": profile.BreaksPerMinute,
	})

	return profile
}
