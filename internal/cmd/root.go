package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for tutorialbatch
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorialbatch",
		Short: "Generate a batch script that renders every Circos tutorial",
		Long: `tutorialbatch walks a tutorial tree laid out as
<root>/<section>/<subsection>/circos.conf and prints one renderer
invocation per tutorial, ready to be saved and run as a shell script.

Nothing is rendered by tutorialbatch itself: pipe the output to sh, or
write it to a file with 'generate --out'.

Configuration is read from .tutorialbatch/config.yaml (or --config),
then TUTORIALBATCH_* environment variables (a .env file is loaded when
present), then command-line flags.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.AddCommand(NewGenerateCommand())
	cmd.AddCommand(NewListCommand())
	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewConfigCommand())

	return cmd
}
