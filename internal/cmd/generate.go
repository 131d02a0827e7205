package cmd

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/harrison/tutorialbatch/internal/config"
	"github.com/harrison/tutorialbatch/internal/display"
	"github.com/harrison/tutorialbatch/internal/filelock"
	"github.com/harrison/tutorialbatch/internal/logger"
	"github.com/harrison/tutorialbatch/internal/tutorial"
	"github.com/spf13/cobra"
)

// scriptHeader starts scripts written with --out.
const scriptHeader = "#!/bin/sh\n"

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print one renderer command per tutorial",
		Long: `Print a shell script that renders every tutorial under the root.

For each directory <root>/<section>/<subsection> containing circos.conf
that passes the section and subsection filters, two lines are printed:

  echo now making image <section>.<subsection>
  <bin> -conf <dir>/circos.conf -outputdir <output_dir> -outputfile tutorial-SS-TT.png <parameters> &> <output_dir>/<target>

where <target> is /dev/null, or tutorial-SS-TT.txt with --redirect.
Diagnostics go to stderr, so stdout can be piped straight to sh.

Examples:
  # Render everything
  tutorialbatch generate --root tutorials --output-dir images | sh

  # Sections 1 to 3 and 5, skipping subsection 2, as PNG
  tutorialbatch generate --root tutorials --sections 1-3,5 --subsections-skip 2 --png

  # Write an executable script instead of printing
  tutorialbatch generate --root tutorials --out render.sh`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	addConfigFlags(cmd)
	cmd.Flags().String("out", "", "Write the script to this file (mode 0755) instead of stdout")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	log := logger.NewConsoleLogger(stderr, cfg.LogLevel)

	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" {
		_, err := generateScript(cfg, cmd.OutOrStdout(), log, stderr)
		return err
	}

	var buf bytes.Buffer
	buf.WriteString(scriptHeader)
	summary, err := generateScript(cfg, &buf, log, stderr)
	if err != nil {
		return err
	}
	if err := filelock.WriteScript(outPath, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}
	log.LogInfo(fmt.Sprintf("Wrote %d commands to %s", summary.Included, outPath))
	return nil
}

// generateScript plans and emits the script for cfg into out.
func generateScript(cfg *config.Config, out io.Writer, log *logger.ConsoleLogger, stderr io.Writer) (tutorial.Summary, error) {
	filters, err := cfg.Filters()
	if err != nil {
		return tutorial.Summary{}, err
	}

	start := time.Now()
	log.LogPlanStart(cfg.TutorialRoot)

	gen := tutorial.NewGenerator(filters, cfg.TutorialOptions(), log)
	summary, err := gen.Generate(out, cfg.TutorialRoot)
	if err != nil {
		return tutorial.Summary{}, err
	}

	log.LogSummary(summary, time.Since(start))
	if summary.Included == 0 {
		display.NoTutorialsMatched(cfg.TutorialRoot, summary.Candidates).Display(stderr, colorEnabled(stderr))
	}
	return summary, nil
}
