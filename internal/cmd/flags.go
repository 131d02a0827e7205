package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/harrison/tutorialbatch/internal/config"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addConfigFlags registers the flags shared by every command that loads a
// configuration.
func addConfigFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("config", "", "Path to config file (default: "+config.DefaultConfigPath+")")
	flags.String("root", "", "Tutorial root directory (tutorial_root)")
	flags.String("output-dir", "", "Directory the renderer writes images to (output_dir)")
	flags.String("bin", "", "Path to the renderer executable (bin)")
	flags.String("parameters", "", "Extra renderer parameters (parameters)")
	flags.String("sections", "", `Sections to render, e.g. "1-3,5" or "all"`)
	flags.String("sections-skip", "", "Sections to skip")
	flags.String("subsections", "", `Subsections to render, e.g. "2,4-6" or "all"`)
	flags.String("subsections-skip", "", "Subsections to skip")
	flags.Bool("png", false, "Add -png to the renderer parameters")
	flags.Bool("svg", false, "Add -svg to the renderer parameters")
	flags.Bool("redirect", false, "Capture renderer output in tutorial-SS-TT.txt instead of /dev/null")
	flags.Bool("sort", false, "Order tutorials numerically by section and subsection")
	flags.String("log-level", "", "Diagnostic verbosity: trace, debug, info, warn, error")
}

// overridesFromFlags returns an override for every flag the user set.
func overridesFromFlags(flags *pflag.FlagSet) (config.Overrides, error) {
	var o config.Overrides

	str := func(name string, dst **string) error {
		if !flags.Changed(name) {
			return nil
		}
		v, err := flags.GetString(name)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
	boolean := func(name string, dst **bool) error {
		if !flags.Changed(name) {
			return nil
		}
		v, err := flags.GetBool(name)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}

	for _, bind := range []func() error{
		func() error { return str("root", &o.TutorialRoot) },
		func() error { return str("output-dir", &o.OutputDir) },
		func() error { return str("bin", &o.Bin) },
		func() error { return str("parameters", &o.Parameters) },
		func() error { return str("sections", &o.Sections) },
		func() error { return str("sections-skip", &o.SectionsSkip) },
		func() error { return str("subsections", &o.Subsections) },
		func() error { return str("subsections-skip", &o.SubsectionsSkip) },
		func() error { return boolean("png", &o.OutputPNG) },
		func() error { return boolean("svg", &o.OutputSVG) },
		func() error { return boolean("redirect", &o.OutputRedirect) },
		func() error { return boolean("sort", &o.Sort) },
		func() error { return str("log-level", &o.LogLevel) },
	} {
		if err := bind(); err != nil {
			return config.Overrides{}, fmt.Errorf("failed to read flags: %w", err)
		}
	}

	return o, nil
}

// loadConfig resolves and validates the run configuration. Callers treat the
// result as immutable.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// resolveConfig layers the config file, then the environment, then flags,
// and expands __expr__ values.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.LoadDotEnv(config.DotEnvFile); err != nil {
		return nil, err
	}

	configPath, _ := cmd.Flags().GetString("config")
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromDir(".")
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	envOverrides, err := config.OverridesFromEnv(cmd.Context(), nil)
	if err != nil {
		return nil, err
	}
	cfg.Merge(envOverrides)

	flagOverrides, err := overridesFromFlags(cmd.Flags())
	if err != nil {
		return nil, err
	}
	cfg.Merge(flagOverrides)

	if err := cfg.Expand(); err != nil {
		return nil, fmt.Errorf("failed to expand config: %w", err)
	}

	return cfg, nil
}

// colorEnabled reports whether w is a terminal.
func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
