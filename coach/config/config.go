package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/RyanBlaney/sonido-poise/algorithms/temporal"
)

// SampleRate is the fixed analysis rate. Every frame-based statistic is
// computed at this rate so results from different recordings are comparable.
const SampleRate = 16000

// AnalysisConfig holds the tunables of the scoring pipeline
type AnalysisConfig struct {
	SampleRate int `json:"sample_rate" yaml:"sample_rate"`
	FrameSize  int `json:"frame_size" yaml:"frame_size"`
	HopSize    int `json:"hop_size" yaml:"hop_size"`

	Pitch       PitchConfig       `json:"pitch" yaml:"pitch"`
	VoiceBreaks VoiceBreakConfig  `json:"voice_breaks" yaml:"voice_breaks"`
	SpeechRate  SpeechRateConfig  `json:"speech_rate" yaml:"speech_rate"`
	Pauses      PauseConfig       `json:"pauses" yaml:"pauses"`
	Calibration CalibrationPolicy `json:"calibration" yaml:"calibration"`

	// Timeout bounds a whole Analyze call; zero disables it
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// PitchConfig configures the f0 tracker
type PitchConfig struct {
	MinFreq      float64 `json:"min_freq" yaml:"min_freq"`
	MaxFreq      float64 `json:"max_freq" yaml:"max_freq"`
	YinThreshold float64 `json:"yin_threshold" yaml:"yin_threshold"`
	SilenceFloor float64 `json:"silence_floor" yaml:"silence_floor"`
}

// VoiceBreakConfig configures energy-dropout detection
type VoiceBreakConfig struct {
	// ThresholdRatio is the fraction of the mean RMS below which a frame counts as a dropout
	ThresholdRatio float64 `json:"threshold_ratio" yaml:"threshold_ratio"`
}

// SpeechRateConfig configures onset-based rate estimation
type SpeechRateConfig struct {
	MelBands         int                     `json:"mel_bands" yaml:"mel_bands"`
	SyllablesPerWord float64                 `json:"syllables_per_word" yaml:"syllables_per_word"`
	PeakPick         temporal.PeakPickParams `json:"peak_pick" yaml:"peak_pick"`
}

// PauseConfig configures transcript based pause estimation
type PauseConfig struct {
	BaselineWPM float64 `json:"baseline_wpm" yaml:"baseline_wpm"`
}

// CalibrationPolicy rescales the raw scores before they are reported.
// Multipliers of 1 leave the scores untouched.
type CalibrationPolicy struct {
	Name                  string  `json:"name" yaml:"name"`
	ConfidenceMultiplier  float64 `json:"confidence_multiplier" yaml:"confidence_multiplier"`
	NervousnessMultiplier float64 `json:"nervousness_multiplier" yaml:"nervousness_multiplier"`
}

// StrictCalibration reports the raw formula output
func StrictCalibration() CalibrationPolicy {
	return CalibrationPolicy{
		Name:                  "strict",
		ConfidenceMultiplier:  1.0,
		NervousnessMultiplier: 1.0,
	}
}

// LenientCalibration boosts confidence by 15% and damps nervousness by 25%,
// the coaching mode shown to candidates while they practise.
func LenientCalibration() CalibrationPolicy {
	return CalibrationPolicy{
		Name:                  "lenient",
		ConfidenceMultiplier:  1.15,
		NervousnessMultiplier: 0.75,
	}
}

// CalibrationByName resolves "strict" or "lenient"
func CalibrationByName(name string) (CalibrationPolicy, error) {
	switch name {
	case "strict", "":
		return StrictCalibration(), nil
	case "lenient":
		return LenientCalibration(), nil
	default:
		return CalibrationPolicy{}, fmt.Errorf("unknown calibration policy %q", name)
	}
}

// DefaultAnalysisConfig returns the configuration the scoring weights were tuned on
func DefaultAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		SampleRate: SampleRate,
		FrameSize:  2048,
		HopSize:    512,
		Pitch: PitchConfig{
			MinFreq:      65.0,
			MaxFreq:      1000.0,
			YinThreshold: 0.15,
			SilenceFloor: 1e-4,
		},
		VoiceBreaks: VoiceBreakConfig{
			ThresholdRatio: 0.3,
		},
		SpeechRate: SpeechRateConfig{
			MelBands:         128,
			SyllablesPerWord: 1.5,
			PeakPick:         temporal.DefaultPeakPickParams(),
		},
		Pauses: PauseConfig{
			BaselineWPM: 150.0,
		},
		Calibration: StrictCalibration(),
		Timeout:     30 * time.Second,
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*AnalysisConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*AnalysisConfig, error) {
	cfg := DefaultAnalysisConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every tunable is usable
func (c *AnalysisConfig) Validate() error {
	var errs []error

	if c.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample_rate must be positive, got %d", c.SampleRate))
	}
	if c.FrameSize <= 0 || c.HopSize <= 0 {
		errs = append(errs, fmt.Errorf("frame_size and hop_size must be positive, got %d/%d", c.FrameSize, c.HopSize))
	}
	if c.HopSize > c.FrameSize {
		errs = append(errs, fmt.Errorf("hop_size %d exceeds frame_size %d", c.HopSize, c.FrameSize))
	}
	if c.Pitch.MinFreq <= 0 || c.Pitch.MaxFreq <= c.Pitch.MinFreq {
		errs = append(errs, fmt.Errorf("pitch range [%g, %g] is invalid", c.Pitch.MinFreq, c.Pitch.MaxFreq))
	}
	if c.Pitch.YinThreshold <= 0 || c.Pitch.YinThreshold >= 1 {
		errs = append(errs, fmt.Errorf("pitch.yin_threshold must be in (0, 1), got %g", c.Pitch.YinThreshold))
	}
	if c.VoiceBreaks.ThresholdRatio <= 0 {
		errs = append(errs, fmt.Errorf("voice_breaks.threshold_ratio must be positive, got %g", c.VoiceBreaks.ThresholdRatio))
	}
	if c.SpeechRate.MelBands <= 0 {
		errs = append(errs, fmt.Errorf("speech_rate.mel_bands must be positive, got %d", c.SpeechRate.MelBands))
	}
	if c.SpeechRate.SyllablesPerWord <= 0 {
		errs = append(errs, fmt.Errorf("speech_rate.syllables_per_word must be positive, got %g", c.SpeechRate.SyllablesPerWord))
	}
	if c.Pauses.BaselineWPM <= 0 {
		errs = append(errs, fmt.Errorf("pauses.baseline_wpm must be positive, got %g", c.Pauses.BaselineWPM))
	}
	if c.Calibration.ConfidenceMultiplier <= 0 || c.Calibration.NervousnessMultiplier <= 0 {
		errs = append(errs, fmt.Errorf("calibration multipliers must be positive"))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid analysis config: %w", errors.Join(errs...))
	}
	return nil
}
