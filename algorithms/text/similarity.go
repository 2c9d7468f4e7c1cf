package text

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// SimilarityRatio returns the Ratcliff/Obershelp similarity of two strings
// compared character by character: 2*M/T where M is the number of matched
// characters and T the total length of both. Identical strings score 1 and
// two empty strings also score 1.
func SimilarityRatio(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	matcher := difflib.NewMatcher(characters(a), characters(b))
	return matcher.Ratio()
}

// characters splits s into its UTF-8 characters
func characters(s string) []string {
	return strings.Split(s, "")
}
