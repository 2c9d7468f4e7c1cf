package linguistic

import (
	"strings"

	"github.com/RyanBlaney/sonido-poise/algorithms/text"
	"github.com/dlclark/regexp2"
)

// FillerWords is the filler lexicon in reporting order. Multi-word entries
// are matched as whole phrases.
var FillerWords = []string{
	"um", "uh", "uhm", "umm", "erm", "ah", "er",
	"like", "you know", "sort of", "kind of", "i mean",
	"actually", "basically", "literally", "right", "okay", "so",
}

type fillerPattern struct {
	term string
	re   *regexp2.Regexp
}

var fillerPatterns = compileFillers(FillerWords)

func compileFillers(terms []string) []fillerPattern {
	patterns := make([]fillerPattern, len(terms))
	for i, term := range terms {
		patterns[i] = fillerPattern{
			term: term,
			re:   text.MustCompilePattern(`\b` + text.QuoteTerm(term) + `\b`),
		}
	}
	return patterns
}

// FillerProfile counts lexical disfluency markers
type FillerProfile struct {
	FillerCount       int            `json:"filler_count"`
	FillerRate        float64        `json:"filler_rate"` // fillers per 100 words
	FillerWordsFound  map[string]int `json:"filler_words_found"`
	ConfidencePenalty float64        `json:"confidence_penalty"` // 0-30
}

// DetectFillerWords counts whole-word filler occurrences in the lower-cased
// transcript. Each lexicon term is counted on its own, so "you know" and
// "so" in "you know so" both score. A blank transcript yields a zero
// profile with an empty map.
func DetectFillerWords(transcript string) FillerProfile {
	profile := FillerProfile{FillerWordsFound: map[string]int{}}
	if text.IsBlank(transcript) {
		return profile
	}

	lower := strings.ToLower(transcript)
	for _, p := range fillerPatterns {
		if n := text.MustCount(p.re, lower); n > 0 {
			profile.FillerWordsFound[p.term] = n
			profile.FillerCount += n
		}
	}

	if words := text.WordCount(transcript); words > 0 {
		profile.FillerRate = float64(profile.FillerCount) / float64(words) * 100
	}
	profile.ConfidencePenalty = min(30, profile.FillerRate*2)

	return profile
}
