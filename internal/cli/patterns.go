package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/testfilter/internal/filter"
)

// patternList is the structured form of the exclusion set.
type patternList struct {
	Exclusions []string `json:"exclusions" yaml:"exclusions"`
}

func newPatternsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the excluded substrings",
		Long:  "Print the exclusion patterns in the order they are checked.",
		Args:  usageArgs(cobra.NoArgs),
		// Override parent PersistentPreRunE, patterns needs no config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writePatterns(cmd.OutOrStdout(), filter.DefaultExclusions(), format)
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "text", "output format: text, json, yaml")

	return cmd
}

func writePatterns(w io.Writer, set filter.ExclusionSet, format string) error {
	list := patternList{Exclusions: set}

	switch format {
	case "text":
		for _, p := range set {
			if _, err := fmt.Fprintln(w, p); err != nil {
				return err
			}
		}

		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(list); err != nil {
			return fmt.Errorf("encoding patterns as JSON: %w", err)
		}

		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(list); err != nil {
			return fmt.Errorf("encoding patterns as YAML: %w", err)
		}

		return enc.Close()
	default:
		return &ExitError{Code: 2, Err: fmt.Errorf("invalid output format %q: must be one of text, json, yaml", format)}
	}
}
