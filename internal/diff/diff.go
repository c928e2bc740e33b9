// Package diff renders the effect of the line filter as a unified diff
// between the original test listing and the filtered one.
package diff

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pmezard/go-difflib/difflib"
)

// Result holds the result of a unified diff computation.
type Result struct {
	Unified        string
	HasDifferences bool
	// Removed is the number of "-" lines in the diff body.
	Removed int
}

// Options configures diff computation.
type Options struct {
	OldLabel string
	NewLabel string
	Context  int
}

// DefaultOptions returns sensible default diff options.
func DefaultOptions() Options {
	return Options{
		OldLabel: "input",
		NewLabel: "filtered",
		Context:  3,
	}
}

// Compute diffs the input lines against the filtered lines. Lines are used
// as read, terminators included.
func Compute(input, filtered []string, opts Options) (*Result, error) {
	ud := difflib.UnifiedDiff{
		A:        normalize(input),
		B:        normalize(filtered),
		FromFile: opts.OldLabel,
		ToFile:   opts.NewLabel,
		Context:  opts.Context,
	}

	unified, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return nil, fmt.Errorf("computing diff: %w", err)
	}

	return &Result{
		Unified:        unified,
		HasDifferences: unified != "",
		Removed:        countRemoved(unified),
	}, nil
}

// normalize terminates an unterminated final line so difflib does not glue
// it to the following diff line.
func normalize(lines []string) []string {
	if len(lines) == 0 {
		return lines
	}

	last := lines[len(lines)-1]
	if strings.HasSuffix(last, "\n") {
		return lines
	}

	out := append([]string(nil), lines...)
	out[len(out)-1] = last + "\n"

	return out
}

func countRemoved(unified string) int {
	n := 0
	inHunk := false

	for _, line := range strings.Split(unified, "\n") {
		switch {
		case strings.HasPrefix(line, "@@"):
			inHunk = true
		case inHunk && strings.HasPrefix(line, "-"):
			n++
		}
	}

	return n
}

// Styles keep tabs as is so a styled "-" line still carries the excluded
// line byte-for-byte.
var (
	lineStyle    = lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
	headerStyle  = lineStyle.Bold(true)
	hunkStyle    = lineStyle.Foreground(lipgloss.Color("6"))
	removedStyle = lineStyle.Foreground(lipgloss.Color("1"))
	addedStyle   = lineStyle.Foreground(lipgloss.Color("2"))
)

// Write writes a formatted diff to w, styling lines when color is set.
func Write(w io.Writer, result *Result, color bool) {
	if !result.HasDifferences {
		_, _ = fmt.Fprintln(w, "No lines excluded.")
		return
	}

	body := strings.TrimSuffix(result.Unified, "\n")

	for _, line := range strings.Split(body, "\n") {
		if color {
			line = styleLine(line)
		}

		_, _ = fmt.Fprintln(w, line)
	}
}

func styleLine(line string) string {
	switch {
	case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
		return headerStyle.Render(line)
	case strings.HasPrefix(line, "@@"):
		return hunkStyle.Render(line)
	case strings.HasPrefix(line, "-"):
		return removedStyle.Render(line)
	case strings.HasPrefix(line, "+"):
		return addedStyle.Render(line)
	default:
		return line
	}
}
