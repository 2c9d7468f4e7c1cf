// Package coach scores a recorded interview answer for vocal confidence,
// nervousness and fluency from its waveform and transcript.
package coach

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RyanBlaney/sonido-poise/algorithms/text"
	"github.com/RyanBlaney/sonido-poise/coach/acoustic"
	"github.com/RyanBlaney/sonido-poise/coach/config"
	"github.com/RyanBlaney/sonido-poise/coach/linguistic"
	"github.com/RyanBlaney/sonido-poise/coach/scoring"
	"github.com/RyanBlaney/sonido-poise/logging"
	"github.com/RyanBlaney/sonido-poise/transcode"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrSampleRateMismatch is returned for a waveform not at the configured rate
	ErrSampleRateMismatch = errors.New("waveform sample rate does not match analysis rate")
	// ErrNotMono is returned for decoded audio with more than one channel
	ErrNotMono = errors.New("audio must be mono")
)

// Report is the full analysis of one answer
type Report struct {
	Timestamp      time.Time              `json:"timestamp"`
	Duration       float64                `json:"duration"` // seconds, as supplied by the caller
	SampleRate     int                    `json:"sample_rate"`
	WordCount      int                    `json:"word_count"`
	DSP            scoring.DSPResults     `json:"dsp"`
	Text           scoring.TextResults    `json:"text"`
	Scores         scoring.CompositeScore `json:"scores"`
	Summary        scoring.Summary        `json:"summary"`
	ProcessingTime time.Duration          `json:"processing_time"`
}

// Analyzer runs the acoustic and linguistic analyzers and scores the result.
// It holds no per-answer state and is safe for concurrent use.
type Analyzer struct {
	config      *config.AnalysisConfig
	pitch       *acoustic.PitchAnalyzer
	energy      *acoustic.EnergyAnalyzer
	voiceBreaks *acoustic.VoiceBreakDetector
	speechRate  *acoustic.SpeechRateAnalyzer
	logger      logging.Logger
}

// NewAnalyzer creates an analyzer; a nil config uses the defaults
func NewAnalyzer(cfg *config.AnalysisConfig) *Analyzer {
	if cfg == nil {
		cfg = config.DefaultAnalysisConfig()
	}

	return &Analyzer{
		config:      cfg,
		pitch:       acoustic.NewPitchAnalyzer(cfg),
		energy:      acoustic.NewEnergyAnalyzer(cfg),
		voiceBreaks: acoustic.NewVoiceBreakDetector(cfg),
		speechRate:  acoustic.NewSpeechRateAnalyzer(cfg),
		logger: logging.WithFields(logging.Fields{
			"component": "coach_analyzer",
		}),
	}
}

// Config returns the analysis configuration
func (a *Analyzer) Config() *config.AnalysisConfig {
	return a.config
}

// Analyze runs all seven analyzers concurrently over the waveform and
// transcript, then scores the joined profiles with the configured
// calibration policy. Silent audio and blank transcripts are scored, not
// rejected; only a waveform at the wrong sample rate or a cancelled
// context is an error.
func (a *Analyzer) Analyze(ctx context.Context, w acoustic.Waveform, duration float64, transcript string) (*Report, error) {
	if w.SampleRate != a.config.SampleRate {
		return nil, fmt.Errorf("%w: got %d Hz, want %d Hz", ErrSampleRateMismatch, w.SampleRate, a.config.SampleRate)
	}

	if a.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.Timeout)
		defer cancel()
	}

	logger := a.logger.WithContext(ctx).WithFields(logging.Fields{
		"samples":  len(w.Samples),
		"duration": duration,
	})
	logger.Debug("Starting answer analysis")

	start := time.Now()

	var (
		pitch      acoustic.PitchProfile
		energy     acoustic.EnergyProfile
		breaks     acoustic.VoiceBreakProfile
		rate       acoustic.SpeechRateProfile
		fillers    linguistic.FillerProfile
		stammering linguistic.StammerProfile
		pauses     linguistic.PauseProfile
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		pitch = a.pitch.Analyze(w)
		return gctx.Err()
	})
	g.Go(func() error {
		energy = a.energy.Analyze(w)
		return gctx.Err()
	})
	g.Go(func() error {
		breaks = a.voiceBreaks.Analyze(w)
		return gctx.Err()
	})
	g.Go(func() error {
		var err error
		rate, err = a.speechRate.Analyze(w)
		if err != nil {
			return fmt.Errorf("speech rate: %w", err)
		}
		return gctx.Err()
	})
	g.Go(func() error {
		fillers = linguistic.DetectFillerWords(transcript)
		return nil
	})
	g.Go(func() error {
		stammering = linguistic.DetectStammering(transcript)
		return nil
	})
	g.Go(func() error {
		pauses = linguistic.AnalyzePausesAt(transcript, duration, a.config.Pauses.BaselineWPM)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(err, "Answer analysis failed")
		return nil, err
	}

	dsp := scoring.DSPResults{
		Pitch:       &pitch,
		Energy:      &energy,
		SpeechRate:  &rate,
		VoiceBreaks: &breaks,
	}
	textResults := scoring.TextResults{
		Fillers:    &fillers,
		Stammering: &stammering,
		Pauses:     &pauses,
	}

	scores := scoring.Compose(a.config.Calibration, dsp, textResults)

	report := &Report{
		Timestamp:      start,
		Duration:       duration,
		SampleRate:     w.SampleRate,
		WordCount:      text.WordCount(transcript),
		DSP:            dsp,
		Text:           textResults,
		Scores:         scores,
		Summary:        scoring.Summarize(scores, dsp, textResults),
		ProcessingTime: time.Since(start),
	}

	logger.Info("Answer analysis completed", logging.Fields{
		"confidence":      scores.Confidence,
		"nervousness":     scores.Nervousness,
		"fluency":         scores.Fluency,
		"calibration":     scores.Calibration,
		"processing_time": report.ProcessingTime.Seconds(),
	})

	return report, nil
}

// AnalyzeAudio analyzes decoded mono audio; the duration is taken from the
// samples
func (a *Analyzer) AnalyzeAudio(ctx context.Context, audio *transcode.AudioData, transcript string) (*Report, error) {
	if audio == nil {
		return nil, fmt.Errorf("audio data cannot be nil")
	}
	if audio.Channels != 1 {
		return nil, fmt.Errorf("%w: got %d channels", ErrNotMono, audio.Channels)
	}

	w := acoustic.Waveform{Samples: audio.PCM, SampleRate: audio.SampleRate}
	return a.Analyze(ctx, w, w.Duration(), transcript)
}
