package filter

import (
	"context"
	"io"
	"log/slog"
)

// Options configures Run.
type Options struct {
	// TrailingNewline appends one final "\n" after the included lines.
	TrailingNewline bool

	// Logger receives a debug summary of the run.
	Logger *slog.Logger
}

// DefaultOptions returns the options of a plain invocation.
func DefaultOptions() Options {
	return Options{
		TrailingNewline: true,
		Logger:          slog.Default(),
	}
}

// Run reads every line from r, filters it, and writes the included lines to
// w. Nothing is written when r cannot be read.
func (f *LineFilter) Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) (*Stats, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}

	result, err := f.Apply(ctx, lines)
	if err != nil {
		return nil, err
	}

	if err := WriteLines(w, result.Included, opts.TrailingNewline); err != nil {
		return nil, err
	}

	stats := NewStats(result)

	opts.Logger.Debug("filtered test listing",
		slog.Int("total", stats.Total),
		slog.Int("included", stats.Included),
		slog.Int("excluded", stats.Excluded),
		slog.Any("patterns", stats.Patterns()),
	)

	return stats, nil
}
