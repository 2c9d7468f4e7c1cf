package linguistic

import (
	"fmt"
	"strings"

	"github.com/RyanBlaney/sonido-poise/algorithms/text"
)

// similarityThreshold is the character ratio above which adjacent words
// count as a repetition
const similarityThreshold = 0.8

// partialRepeat matches hyphenated self-repetition such as "w-w" or "th-th"
var partialRepeat = text.MustCompilePattern(`\b(\w+)-\1`)

// StammerProfile counts repeated words and repeated word fragments
type StammerProfile struct {
	StammerCount   int      `json:"stammer_count"`
	RepeatedWords  []string `json:"repeated_words"`  // "first -> second"
	FluencyPenalty float64  `json:"fluency_penalty"` // 0-25
}

// DetectStammering runs two passes and sums their counts. The first scans
// adjacent lower-cased words and records a pair when their similarity ratio
// exceeds 0.8; both words of a pair are consumed so a triple repetition
// counts once. The second counts hyphenated fragments like "w-w-want".
func DetectStammering(transcript string) StammerProfile {
	profile := StammerProfile{RepeatedWords: []string{}}
	if text.IsBlank(transcript) {
		return profile
	}

	words := text.LowerWords(transcript)
	for i := 0; i < len(words)-1; {
		if text.SimilarityRatio(words[i], words[i+1]) > similarityThreshold {
			profile.RepeatedWords = append(profile.RepeatedWords,
				fmt.Sprintf("%s -> %s", words[i], words[i+1]))
			profile.StammerCount++
			i += 2
			continue
		}
		i++
	}

	profile.StammerCount += text.MustCount(partialRepeat, strings.ToLower(transcript))
	profile.FluencyPenalty = min(25, float64(profile.StammerCount)*5)

	return profile
}
