package cli

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/qpath/internal/config"
	"github.com/vvka-141/qpath/internal/logging"
	"github.com/vvka-141/qpath/pkg/qpath"
)

// loadSettings resolves the effective configuration for cmd.
// Precedence: flags, then environment (.env honored), then qpath.yaml, then defaults.
func loadSettings(cmd *cobra.Command) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	dir, err := cmd.Flags().GetString("config")
	if err != nil {
		dir = "."
	}

	cfg, err := config.Load(dir)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: failed to load %s: %v", qpath.ErrInvalidConfig, config.ConfigFileName, err)
		}
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	if cmd.Flags().Changed("output") {
		cfg.Output, _ = cmd.Flags().GetString("output")
	}
	if f := cmd.Flags().Lookup("mode"); f != nil && f.Changed {
		cfg.Mode = f.Value.String()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", qpath.ErrInvalidConfig, err)
	}
	return cfg, nil
}

// newLogger returns a console logger on the command's stderr honoring --verbose.
func newLogger(cmd *cobra.Command) qpath.Logger {
	return logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), getVerboseFlag(cmd))
}

// newEntry builds a PathEntry logging to the command's stderr.
func newEntry(cmd *cobra.Command, path string) *qpath.PathEntry {
	return qpath.New(path, qpath.WithLogger(newLogger(cmd)))
}
