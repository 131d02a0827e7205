package cmd

import (
	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command, which prints the resolved
// configuration.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration as YAML",
		Long: `Print the configuration after merging the config file, TUTORIALBATCH_*
environment variables and flags, with __expr__ values expanded. The
result is not validated, so this also works for incomplete setups.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return cfg.Dump(cmd.OutOrStdout())
		},
	}

	addConfigFlags(cmd)
	return cmd
}
