package text

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// CompilePattern compiles a pattern with Perl/Python semantics, including
// backreferences and Unicode-aware \b and \w, which RE2 cannot express.
func CompilePattern(pattern string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", pattern, err)
	}
	return re, nil
}

// MustCompilePattern is CompilePattern for package-level patterns
func MustCompilePattern(pattern string) *regexp2.Regexp {
	re, err := CompilePattern(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// FindAll returns every non-overlapping match of re in s, scanning left to right
func FindAll(re *regexp2.Regexp, s string) ([]string, error) {
	matches := []string{}

	m, err := re.FindStringMatch(s)
	for m != nil && err == nil {
		matches = append(matches, m.String())
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return nil, fmt.Errorf("match %q: %w", re.String(), err)
	}

	return matches, nil
}

// CountMatches returns the number of non-overlapping matches of re in s
func CountMatches(re *regexp2.Regexp, s string) (int, error) {
	matches, err := FindAll(re, s)
	if err != nil {
		return 0, err
	}
	return len(matches), nil
}

// MustCount is CountMatches for patterns compiled without a match timeout.
// regexp2 only fails a match when a timeout expires, so an error here is a
// programming mistake.
func MustCount(re *regexp2.Regexp, s string) int {
	n, err := CountMatches(re, s)
	if err != nil {
		panic(err)
	}
	return n
}

// QuoteTerm escapes a literal word or phrase for use inside a pattern
func QuoteTerm(term string) string {
	return regexp2.Escape(term)
}
