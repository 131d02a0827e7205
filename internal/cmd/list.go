package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/harrison/tutorialbatch/internal/logger"
	"github.com/harrison/tutorialbatch/internal/tutorial"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show every tutorial directory and whether it would be rendered",
		Long: `List every tutorial directory found under the root together with
the filter decision: include, skip (with the filter that rejected it), or
abort (the directory name is not <section>/<subsection> digits).`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	addConfigFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	filters, err := cfg.Filters()
	if err != nil {
		return err
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	gen := tutorial.NewGenerator(filters, cfg.TutorialOptions(), log)

	results, planErr := gen.Plan(cfg.TutorialRoot)
	out := cmd.OutOrStdout()
	printResults(out, results, colorEnabled(out))
	return planErr
}

// printResults prints one row per result. Fields are padded before they are
// colored so columns stay aligned.
func printResults(out io.Writer, results []tutorial.Result, colorOutput bool) {
	if len(results) == 0 {
		fmt.Fprintln(out, "No tutorial directories found")
		return
	}

	fmt.Fprintf(out, "%-8s %-10s %-8s %-22s %s\n", "SECTION", "SUBSECTION", "OUTCOME", "OUTPUT", "DETAIL")
	for _, r := range results {
		section, subsection, output := "-", "-", "-"
		if r.Outcome != tutorial.OutcomeAbort {
			section = strconv.Itoa(r.Entry.Section)
			subsection = strconv.Itoa(r.Entry.Subsection)
			output = r.Entry.OutputFile
		}

		outcome := fmt.Sprintf("%-8s", r.Outcome)
		if colorOutput {
			outcome = logger.OutcomeColor(r.Outcome).Sprint(outcome)
		}

		detail := r.Candidate.Dir
		if r.Reason != "" {
			detail = r.Reason
		}
		fmt.Fprintf(out, "%-8s %-10s %s %-22s %s\n", section, subsection, outcome, output, detail)
	}

	summary := tutorial.Summarize(results)
	fmt.Fprintf(out, "\n%d found, %d included, %d skipped\n", summary.Candidates, summary.Included, summary.Skipped)
}
