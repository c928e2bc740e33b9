package filter

import (
	"context"
	"fmt"
)

// ExcludedLine records a line that was dropped by the filter.
type ExcludedLine struct {
	// Line is the excluded input line, terminator included.
	Line string
	// Pattern is the first exclusion pattern found in Line.
	Pattern string
	// Reason is a human-readable explanation for the exclusion.
	Reason string
}

// Result holds the outcome of a filter application.
type Result struct {
	// Included are the lines that passed the filter, in input order.
	Included []string
	// Excluded are the lines removed by the filter, in input order.
	Excluded []ExcludedLine
}

// LineFilter excludes lines containing any pattern of its exclusion set.
// It holds no per-line state and is safe for concurrent use.
type LineFilter struct {
	exclusions ExclusionSet
}

// New creates a LineFilter over the given exclusion set. A nil or empty set
// lets every line through.
func New(exclusions ExclusionSet) *LineFilter {
	return &LineFilter{exclusions: append(ExclusionSet(nil), exclusions...)}
}

// NewDefault creates a LineFilter over [DefaultExclusions].
func NewDefault() *LineFilter {
	return New(defaultExclusions)
}

// Exclusions returns a copy of the filter's exclusion set.
func (f *LineFilter) Exclusions() ExclusionSet {
	return append(ExclusionSet(nil), f.exclusions...)
}

// Filter returns the included lines in their original relative order.
func (f *LineFilter) Filter(lines []string) []string {
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		if f.exclusions.Includes(line) {
			out = append(out, line)
		}
	}

	return out
}

// Apply runs the filter over lines and records why each excluded line was
// dropped. It stops early if ctx is cancelled.
func (f *LineFilter) Apply(ctx context.Context, lines []string) (*Result, error) {
	r := &Result{Included: make([]string, 0, len(lines))}

	for _, line := range lines {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if p, ok := f.exclusions.Match(line); ok {
			r.Excluded = append(r.Excluded, ExcludedLine{
				Line:    line,
				Pattern: p,
				Reason:  fmt.Sprintf("excluded by pattern: %s", p),
			})
		} else {
			r.Included = append(r.Included, line)
		}
	}

	return r, nil
}
