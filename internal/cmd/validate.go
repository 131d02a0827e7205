package cmd

import (
	"fmt"
	"io"

	"github.com/harrison/tutorialbatch/internal/config"
	"github.com/harrison/tutorialbatch/internal/tutorial"
	"github.com/spf13/cobra"
)

// NewValidateCommand creates and returns the validate subcommand
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration and tutorial tree without printing commands",
		Long: `Load the configuration, parse the section and subsection filters,
and walk the tutorial root, checking for:
  - Required settings (tutorial_root, bin, output_dir)
  - Malformed range specs such as "3-1" or "a,b"
  - A missing or unreadable tutorial root
  - Tutorial directories whose names are not <section>/<subsection> digits

Exit code: 0 if valid, 1 if errors found`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return validateWithOutput(cfg, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	addConfigFlags(cmd)
	return cmd
}

// validateWithOutput walks the tree for cfg and reports a summary to output
func validateWithOutput(cfg *config.Config, output io.Writer) error {
	filters, err := cfg.Filters()
	if err != nil {
		return err
	}

	gen := tutorial.NewGenerator(filters, cfg.TutorialOptions(), nil)
	results, err := gen.Plan(cfg.TutorialRoot)
	if err != nil {
		fmt.Fprintf(output, "✗ %s\n", cfg.TutorialRoot)
		return err
	}

	summary := tutorial.Summarize(results)
	fmt.Fprintf(output, "✓ %s is valid\n", cfg.TutorialRoot)
	fmt.Fprintf(output, "  Tutorials found: %d\n", summary.Candidates)
	fmt.Fprintf(output, "  Included: %d\n", summary.Included)
	fmt.Fprintf(output, "  Skipped: %d\n", summary.Skipped)
	return nil
}
