package acoustic

import (
	"github.com/RyanBlaney/sonido-poise/algorithms/common"
	"github.com/RyanBlaney/sonido-poise/algorithms/temporal"
	"github.com/RyanBlaney/sonido-poise/coach/config"
	"github.com/RyanBlaney/sonido-poise/logging"
)

// EnergyAnalyzer measures how consistent the speaker's loudness is
type EnergyAnalyzer struct {
	energy *temporal.Energy
	logger logging.Logger
}

// NewEnergyAnalyzer creates an energy analyzer from the analysis configuration
func NewEnergyAnalyzer(cfg *config.AnalysisConfig) *EnergyAnalyzer {
	return &EnergyAnalyzer{
		energy: temporal.NewEnergy(cfg.FrameSize, cfg.HopSize, true),
		logger: logging.WithFields(logging.Fields{
			"component": "energy_analyzer",
		}),
	}
}

// Analyze summarizes the RMS envelope. consistency = max(0, 100 - std/mean*100),
// or 0 when the mean is 0.
func (a *EnergyAnalyzer) Analyze(w Waveform) EnergyProfile {
	rms := a.energy.ComputeShortTimeEnergy(w.Samples)
	if len(rms) == 0 {
		return EnergyProfile{}
	}

	mean, std := common.MeanStdDev(rms)
	profile := EnergyProfile{
		MeanEnergy:       mean,
		EnergyVariance:   std,
		MaxEnergy:        common.Max(rms),
		MinEnergy:        common.Min(rms),
		ConsistencyScore: common.InverseVariationScore(mean, std),
	}

	a.logger.Debug("Energy analyzed", logging.Fields{
		"frames":      len(rms),
		"mean_energy": profile.MeanEnergy,
		"consistency": profile.ConsistencyScore,
	})

	return profile
}
