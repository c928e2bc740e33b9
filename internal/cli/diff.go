package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hupe1980/testfilter/internal/config"
	"github.com/hupe1980/testfilter/internal/diff"
	"github.com/hupe1980/testfilter/internal/filter"
	"github.com/hupe1980/testfilter/internal/logging"
)

type diffOptions struct {
	// Lines of context around each excluded line.
	context int
}

func newDiffCommand() *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show which lines of a test listing would be excluded",
		Long: `Diff reads a test listing from standard input and prints a unified diff
between the listing and its filtered form. Every "-" line is a test that the
filter drops.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDiff(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.context, "context", "U", 3, "lines of context around excluded lines")

	return cmd
}

func runDiff(ctx context.Context, in io.Reader, out io.Writer, opts *diffOptions) error {
	if opts.context < 0 {
		return &ExitError{Code: 2, Err: fmt.Errorf("--context must not be negative, got %d", opts.context)}
	}

	cfg := config.FromContext(ctx)
	logger := logging.FromContext(ctx)

	lines, err := filter.ReadLines(in)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	result, err := filter.NewDefault().Apply(ctx, lines)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	diffOpts := diff.DefaultOptions()
	diffOpts.Context = opts.context

	d, err := diff.Compute(lines, result.Included, diffOpts)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	diff.Write(out, d, !cfg.NoColor)

	stats := filter.NewStats(result)
	logger.Debug("diff computed",
		slog.Int("total", stats.Total),
		slog.Int("excluded", stats.Excluded),
		slog.Int("removed", d.Removed),
		slog.Any("patterns", stats.Patterns()),
	)

	return nil
}
