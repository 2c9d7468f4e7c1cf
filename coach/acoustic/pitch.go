package acoustic

import (
	"github.com/RyanBlaney/sonido-poise/algorithms/common"
	"github.com/RyanBlaney/sonido-poise/algorithms/tonal"
	"github.com/RyanBlaney/sonido-poise/coach/config"
	"github.com/RyanBlaney/sonido-poise/logging"
)

// PitchAnalyzer measures how steady the speaker's pitch is
type PitchAnalyzer struct {
	detector *tonal.PitchDetector
	logger   logging.Logger
}

// NewPitchAnalyzer creates a pitch analyzer from the analysis configuration
func NewPitchAnalyzer(cfg *config.AnalysisConfig) *PitchAnalyzer {
	return &PitchAnalyzer{
		detector: tonal.NewPitchDetectorWithParams(tonal.PitchDetectionParams{
			SampleRate:   cfg.SampleRate,
			FrameSize:    cfg.FrameSize,
			HopSize:      cfg.HopSize,
			MinFreq:      cfg.Pitch.MinFreq,
			MaxFreq:      cfg.Pitch.MaxFreq,
			YinThreshold: cfg.Pitch.YinThreshold,
			SilenceFloor: cfg.Pitch.SilenceFloor,
		}),
		logger: logging.WithFields(logging.Fields{
			"component": "pitch_analyzer",
		}),
	}
}

// Analyze tracks f0 over the waveform and summarizes the voiced frames.
// stability = max(0, 100 - std/mean*100).
func (a *PitchAnalyzer) Analyze(w Waveform) PitchProfile {
	frames := a.detector.Track(w.Samples)
	pitches := tonal.VoicedPitches(frames)

	if len(pitches) == 0 {
		a.logger.Debug("No voiced frames", logging.Fields{
			"frames": len(frames),
		})
		return PitchProfile{}
	}

	mean, std := common.MeanStdDev(pitches)
	profile := PitchProfile{
		MeanPitch:      mean,
		PitchVariance:  std,
		PitchRange:     common.Max(pitches) - common.Min(pitches),
		StabilityScore: common.InverseVariationScore(mean, std),
		VoicedFrames:   len(pitches),
	}

	a.logger.Debug("Pitch analyzed", logging.Fields{
		"frames":        len(frames),
		"voiced_frames": profile.VoicedFrames,
		"mean_pitch":    profile.MeanPitch,
		"stability":     profile.StabilityScore,
	})

	return profile
}
