package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"I", "think,", "so."}, Words("  I think,\n so. "))
	assert.Equal(t, []string{"um", "okay"}, LowerWords("Um OKAY"))
	assert.Equal(t, 0, WordCount(" \t\n"))
	assert.Equal(t, 8, WordCount("um so like I think it was okay"))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t\n "))
	assert.False(t, IsBlank(" a "))
}

func TestSimilarityRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{a: "i", b: "i", want: 1.0},
		{a: "think", b: "think", want: 1.0},
		{a: "think", b: "thinks", want: 10.0 / 11.0},
		{a: "the", b: "a", want: 0.0},
		{a: "was", b: "good", want: 0.0},
		{a: "", b: "", want: 1.0},
		{a: "abc", b: "", want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.InDelta(t, tt.want, SimilarityRatio(tt.a, tt.b), 1e-9)
		})
	}
}

func TestFindAllBackreference(t *testing.T) {
	re := MustCompilePattern(`\b(\w+)-\1`)

	matches, err := FindAll(re, "i w-w-want to th-the store and re-re-read")
	require.NoError(t, err)
	assert.Equal(t, []string{"w-w", "th-th", "re-re"}, matches)

	n, err := CountMatches(re, "well-known self-made")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestFindAllWordBoundary(t *testing.T) {
	re := MustCompilePattern(`\bso\b`)

	n, err := CountMatches(re, "so, also soon so")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCompilePatternError(t *testing.T) {
	_, err := CompilePattern(`(unclosed`)
	assert.Error(t, err)
	assert.Panics(t, func() { MustCompilePattern(`(unclosed`) })
}

func TestQuoteTerm(t *testing.T) {
	re := MustCompilePattern(`\b` + QuoteTerm("you know") + `\b`)
	assert.Equal(t, 2, MustCount(re, "you know, i mean you know it"))

	dotted := MustCompilePattern(QuoteTerm("a.b"))
	assert.Equal(t, 1, MustCount(dotted, "a.b axb"))
}
