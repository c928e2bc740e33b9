// Package cli implements the cobra command tree for testfilter.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/testfilter/internal/config"
	"github.com/hupe1980/testfilter/internal/filter"
	"github.com/hupe1980/testfilter/internal/logging"
)

// ExitError wraps an error with a specific process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Execute builds the command tree, runs it against the process streams, and
// returns the exit code.
func Execute() int {
	return execute(NewRootCommand(), os.Stderr)
}

// execute runs cmd and reports a failure on stderr. Errors without an
// explicit code exit with 1.
func execute(cmd *cobra.Command, stderr io.Writer) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return 1
}

// usageArgs marks positional argument errors as usage errors, which exit
// with code 2 like flag errors do.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return &ExitError{Code: 2, Err: err}
		}

		return nil
	}
}

// NewRootCommand constructs the top-level cobra.Command. The root command is
// the filter itself; subcommands are auxiliary.
func NewRootCommand() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "testfilter",
		Short: "Drop unsupported storage tests from an e2e test listing",
		Long: `testfilter reads a test listing from standard input, one test name per
line, and writes back every line that does not contain one of the excluded
patterns:

  ntfs, ephemeral, Pre-provisioned, Inline-volume

Matching is a literal, case-sensitive substring test. Included lines are
written unchanged and in their original order, followed by one final newline.`,
		Example:       `  ginkgo --dry-run ./e2e.test | testfilter > tests.txt`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd, cfgFile)
			if err != nil {
				return &ExitError{Code: 2, Err: err}
			}

			logger := logging.SetupWithWriter(cfg, cmd.ErrOrStderr())

			ctx := cmd.Context()
			ctx = config.NewContext(ctx, cfg)
			ctx = logging.NewContext(ctx, logger)
			cmd.SetContext(ctx)

			logger.Debug("configuration loaded",
				slog.String("logLevel", cfg.LogLevel),
				slog.String("logFormat", cfg.LogFormat),
				slog.String("configFile", cfg.ConfigFile),
			)

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFilter(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: .testfilter.yaml)")
	pf.String("log-level", config.LogLevelInfo, "log level: debug, info, warn, error")
	pf.String("log-format", config.LogFormatText, "log format: text, json")
	pf.Bool("no-color", false, "disable colored output")
	pf.BoolP("quiet", "q", false, "suppress non-essential output")
	pf.Bool("trailing-newline", true, "append one final newline after the filtered lines")

	// Flag parsing errors return exit code 2.
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: 2, Err: err}
	})

	cmd.AddCommand(
		newDiffCommand(),
		newPatternsCommand(),
		newVersionCommand(),
		newCompletionCommand(),
	)

	return cmd
}

func runFilter(ctx context.Context, in io.Reader, out io.Writer) error {
	cfg := config.FromContext(ctx)

	opts := filter.Options{
		TrailingNewline: cfg.TrailingNewline,
		Logger:          logging.FromContext(ctx),
	}

	if _, err := filter.NewDefault().Run(ctx, in, out, opts); err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	return nil
}
