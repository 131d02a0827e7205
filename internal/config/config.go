package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/tutorialbatch/internal/tutorial"
	"gopkg.in/yaml.v3"
)

// Config represents tutorialbatch configuration options
type Config struct {
	// TutorialRoot is the directory holding <section>/<subsection>/circos.conf
	TutorialRoot string `yaml:"tutorial_root"`

	// OutputDir is where the renderer writes images and captured output
	OutputDir string `yaml:"output_dir"`

	// Bin is the path to the renderer executable
	Bin string `yaml:"bin"`

	// Parameters are extra renderer flags placed before the redirect
	Parameters string `yaml:"parameters"`

	// Sections selects sections to render (range spec, empty or "all" = every section)
	Sections string `yaml:"sections"`

	// SectionsSkip lists sections never rendered (range spec, empty = none)
	SectionsSkip string `yaml:"sections_skip"`

	// Subsections selects subsections to render (range spec, empty or "all" = every subsection)
	Subsections string `yaml:"subsections"`

	// SubsectionsSkip lists subsections never rendered (range spec, empty = none)
	SubsectionsSkip string `yaml:"subsections_skip"`

	// OutputPNG adds -png to the renderer parameters
	OutputPNG bool `yaml:"output_png"`

	// OutputSVG adds -svg to the renderer parameters
	OutputSVG bool `yaml:"output_svg"`

	// OutputRedirect captures renderer output in tutorial-SS-TT.txt instead of discarding it
	OutputRedirect bool `yaml:"output_redirect"`

	// Sort emits commands in numeric (section, subsection) order
	Sort bool `yaml:"sort"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		TutorialRoot: "",
		OutputDir:    ".",
		Bin:          "circos",
		LogLevel:     "info",
	}
}

// DefaultConfigPath is the config file looked up when --config is not given
const DefaultConfigPath = ".tutorialbatch/config.yaml"

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// A second pass into a raw map tells which keys were present, so an
	// explicit false or "" still overrides a default.
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	for key := range rawMap {
		if _, known := cfg.fieldPointers()[key]; !known {
			return nil, fmt.Errorf("unknown config key %q in %s", key, path)
		}
	}

	src := fileCfg.fieldPointers()
	dst := cfg.fieldPointers()
	for key := range rawMap {
		switch d := dst[key].(type) {
		case *string:
			*d = *src[key].(*string)
		case *bool:
			*d = *src[key].(*bool)
		}
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .tutorialbatch/config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, DefaultConfigPath))
}

// fieldPointers maps YAML keys to the fields they populate.
func (c *Config) fieldPointers() map[string]interface{} {
	return map[string]interface{}{
		"tutorial_root":    &c.TutorialRoot,
		"output_dir":       &c.OutputDir,
		"bin":              &c.Bin,
		"parameters":       &c.Parameters,
		"sections":         &c.Sections,
		"sections_skip":    &c.SectionsSkip,
		"subsections":      &c.Subsections,
		"subsections_skip": &c.SubsectionsSkip,
		"output_png":       &c.OutputPNG,
		"output_svg":       &c.OutputSVG,
		"output_redirect":  &c.OutputRedirect,
		"sort":             &c.Sort,
		"log_level":        &c.LogLevel,
	}
}

// Overrides carries optional values from the environment or CLI flags.
// Nil fields leave the configuration untouched.
type Overrides struct {
	TutorialRoot    *string `env:"TUTORIALBATCH_TUTORIAL_ROOT,noinit"`
	OutputDir       *string `env:"TUTORIALBATCH_OUTPUT_DIR,noinit"`
	Bin             *string `env:"TUTORIALBATCH_BIN,noinit"`
	Parameters      *string `env:"TUTORIALBATCH_PARAMETERS,noinit"`
	Sections        *string `env:"TUTORIALBATCH_SECTIONS,noinit"`
	SectionsSkip    *string `env:"TUTORIALBATCH_SECTIONS_SKIP,noinit"`
	Subsections     *string `env:"TUTORIALBATCH_SUBSECTIONS,noinit"`
	SubsectionsSkip *string `env:"TUTORIALBATCH_SUBSECTIONS_SKIP,noinit"`
	OutputPNG       *bool   `env:"TUTORIALBATCH_OUTPUT_PNG,noinit"`
	OutputSVG       *bool   `env:"TUTORIALBATCH_OUTPUT_SVG,noinit"`
	OutputRedirect  *bool   `env:"TUTORIALBATCH_OUTPUT_REDIRECT,noinit"`
	Sort            *bool   `env:"TUTORIALBATCH_SORT,noinit"`
	LogLevel        *string `env:"TUTORIALBATCH_LOG_LEVEL,noinit"`
}

// Merge applies non-nil override values onto the configuration
// This allows environment variables and CLI flags to take precedence over config file settings
func (c *Config) Merge(o Overrides) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}

	setString(&c.TutorialRoot, o.TutorialRoot)
	setString(&c.OutputDir, o.OutputDir)
	setString(&c.Bin, o.Bin)
	setString(&c.Parameters, o.Parameters)
	setString(&c.Sections, o.Sections)
	setString(&c.SectionsSkip, o.SectionsSkip)
	setString(&c.Subsections, o.Subsections)
	setString(&c.SubsectionsSkip, o.SubsectionsSkip)
	setBool(&c.OutputPNG, o.OutputPNG)
	setBool(&c.OutputSVG, o.OutputSVG)
	setBool(&c.OutputRedirect, o.OutputRedirect)
	setBool(&c.Sort, o.Sort)
	setString(&c.LogLevel, o.LogLevel)
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.TutorialRoot) == "" {
		return fmt.Errorf("tutorial_root is required")
	}
	if strings.TrimSpace(c.Bin) == "" {
		return fmt.Errorf("bin cannot be empty")
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("output_dir cannot be empty")
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if _, err := c.Filters(); err != nil {
		return err
	}

	return nil
}

// Filters parses the four range specs once for a run.
func (c *Config) Filters() (tutorial.Filters, error) {
	return tutorial.NewFilters(c.Sections, c.SectionsSkip, c.Subsections, c.SubsectionsSkip)
}

// TutorialOptions returns the command synthesis settings.
func (c *Config) TutorialOptions() tutorial.Options {
	return tutorial.Options{
		Bin:        c.Bin,
		OutputDir:  c.OutputDir,
		Parameters: c.Parameters,
		PNG:        c.OutputPNG,
		SVG:        c.OutputSVG,
		Redirect:   c.OutputRedirect,
		Sort:       c.Sort,
	}
}

// Dump writes the configuration as YAML.
func (c *Config) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}
