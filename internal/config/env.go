package config

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// DotEnvFile is loaded into the process environment when present
const DotEnvFile = ".env"

// LoadDotEnv loads KEY=value pairs from path into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// OverridesFromEnv reads TUTORIALBATCH_* variables through lookuper.
// Pass nil to read the process environment.
func OverridesFromEnv(ctx context.Context, lookuper envconfig.Lookuper) (Overrides, error) {
	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}

	var o Overrides
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &o,
		Lookuper: lookuper,
	}); err != nil {
		return Overrides{}, fmt.Errorf("failed to read environment: %w", err)
	}
	return o, nil
}
