package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const ConfigFileName = "qpath.yaml"

// Environment variables overriding the config file.
const (
	EnvMode   = "QPATH_MODE"
	EnvOutput = "QPATH_OUTPUT"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

const DefaultMode = "0755"

type ProjectConfig struct {
	// Mode is the octal permission string used by mkdirp.
	Mode string `yaml:"mode,omitempty"`

	// Output is "text" or "json".
	Output string `yaml:"output,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *ProjectConfig {
	return &ProjectConfig{
		Mode:   DefaultMode,
		Output: OutputText,
	}
}

// Load reads qpath.yaml from dir. Unset fields are filled from Default.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.fillDefaults()
	return &cfg, nil
}

// ApplyEnv overrides fields from QPATH_MODE and QPATH_OUTPUT when set.
func (c *ProjectConfig) ApplyEnv() {
	if v := os.Getenv(EnvMode); v != "" {
		c.Mode = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output = v
	}
}

// Validate checks that Mode parses and Output is known.
func (c *ProjectConfig) Validate() error {
	if _, err := ParseMode(c.Mode); err != nil {
		return err
	}
	switch c.Output {
	case OutputText, OutputJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want %q or %q)", c.Output, OutputText, OutputJSON)
	}
}

func (c *ProjectConfig) fillDefaults() {
	def := Default()
	if c.Mode == "" {
		c.Mode = def.Mode
	}
	if c.Output == "" {
		c.Output = def.Output
	}
}

// ParseMode parses an octal permission string such as "0755" or "750".
func ParseMode(s string) (fs.FileMode, error) {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid mode %q: %w", s, err)
	}
	if v > 0o777 {
		return 0, fmt.Errorf("invalid mode %q: only permission bits are allowed", s)
	}
	return fs.FileMode(v), nil
}
