package scoring

import (
	"github.com/RyanBlaney/sonido-poise/algorithms/common"
)

const nervousnessBaseline = 30.0

// Nervousness scores vocal nervousness on 0-100. Each term is capped on its
// own so no single signal can saturate the score:
//
//	pitch instability   min(20, cv*100*0.3)
//	energy instability  min(15, cv*100*0.25)
//	voice breaks        min(15, breaks/min*3)
//	rushing             min(10, (wpm-180)*0.2) above 180 wpm
//	fillers             min(15, rate*1.5)
//	stammers            min(10, count*4)
//
// A missing pitch or energy profile contributes nothing, a missing speech
// rate reads as 140 wpm.
func Nervousness(dsp DSPResults, text TextResults) float64 {
	nervousness := nervousnessBaseline

	if p := dsp.Pitch; p != nil && p.MeanPitch > 0 {
		nervousness += min(20, p.PitchVariance/p.MeanPitch*100*0.3)
	}

	if e := dsp.Energy; e != nil && e.MeanEnergy > 0 {
		nervousness += min(15, e.EnergyVariance/e.MeanEnergy*100*0.25)
	}

	if b := dsp.VoiceBreaks; b != nil {
		nervousness += min(15, b.BreaksPerMinute*3)
	}

	wpm := 140.0
	if dsp.SpeechRate != nil {
		wpm = dsp.SpeechRate.WordsPerMinute
	}
	if wpm > 180 {
		nervousness += min(10, (wpm-180)*0.2)
	}

	if f := text.Fillers; f != nil {
		nervousness += min(15, f.FillerRate*1.5)
	}

	if s := text.Stammering; s != nil {
		nervousness += min(10, float64(s.StammerCount)*4)
	}

	return common.Round(common.Clamp(nervousness, 0, 100), 2)
}
