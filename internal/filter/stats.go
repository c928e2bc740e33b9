package filter

import (
	"k8s.io/apimachinery/pkg/util/sets"
)

// Stats summarises a filter run.
type Stats struct {
	Total    int
	Included int
	Excluded int
	// ByPattern counts excluded lines per first-matching pattern.
	ByPattern map[string]int
}

// NewStats aggregates r.
func NewStats(r *Result) *Stats {
	s := &Stats{
		Included:  len(r.Included),
		Excluded:  len(r.Excluded),
		ByPattern: make(map[string]int),
	}

	s.Total = s.Included + s.Excluded

	for _, ex := range r.Excluded {
		s.ByPattern[ex.Pattern]++
	}

	return s
}

// Patterns returns the sorted patterns that excluded at least one line.
func (s *Stats) Patterns() []string {
	return sets.List(sets.KeySet(s.ByPattern))
}
