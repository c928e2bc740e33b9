package filter

import (
	"strings"
)

// ExclusionSet is an ordered list of case-sensitive substring patterns. A line
// containing any of them, anywhere, is excluded.
type ExclusionSet []string

// defaultExclusions are the test-name fragments of storage e2e suites that
// cannot run in the target environment.
var defaultExclusions = ExclusionSet{
	"ntfs",
	"ephemeral",
	"Pre-provisioned",
	"Inline-volume",
}

// DefaultExclusions returns a copy of the built-in exclusion set.
func DefaultExclusions() ExclusionSet {
	return append(ExclusionSet(nil), defaultExclusions...)
}

// Match reports the first pattern contained in line. Matching is literal,
// unanchored, and case-sensitive.
func (s ExclusionSet) Match(line string) (string, bool) {
	for _, p := range s {
		if strings.Contains(line, p) {
			return p, true
		}
	}

	return "", false
}

// Excludes reports whether line contains any pattern of the set.
func (s ExclusionSet) Excludes(line string) bool {
	_, ok := s.Match(line)
	return ok
}

// Includes is the negation of Excludes.
func (s ExclusionSet) Includes(line string) bool {
	return !s.Excludes(line)
}
