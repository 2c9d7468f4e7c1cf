package text

import (
	"strings"
	"unicode"
)

// Words splits a transcript on runs of whitespace. Punctuation stays
// attached to its word, the same tokens a speech-to-text transcript yields
// when counted by a human.
func Words(transcript string) []string {
	return strings.Fields(transcript)
}

// LowerWords lower-cases the transcript before splitting it
func LowerWords(transcript string) []string {
	return strings.Fields(strings.ToLower(transcript))
}

// WordCount returns the number of whitespace separated words
func WordCount(transcript string) int {
	return len(Words(transcript))
}

// IsBlank reports whether the transcript holds nothing but whitespace
func IsBlank(transcript string) bool {
	return strings.TrimFunc(transcript, unicode.IsSpace) == ""
}
