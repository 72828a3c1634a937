package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `mode: "0750"
output: json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "0750", cfg.Mode)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("output: json\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, DefaultMode, cfg.Mode)
	assert.Equal(t, OutputJSON, cfg.Output)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{{invalid"), 0644))

	cfg, err := Load(dir)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(""), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, *Default(), *cfg)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvMode, "0700")
	t.Setenv(EnvOutput, OutputJSON)

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "0700", cfg.Mode)
	assert.Equal(t, OutputJSON, cfg.Output)
}

func TestApplyEnv_UnsetKeepsValues(t *testing.T) {
	t.Setenv(EnvMode, "")
	t.Setenv(EnvOutput, "")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, *Default(), *cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ProjectConfig
		wantErr bool
	}{
		{"defaults", *Default(), false},
		{"json output", ProjectConfig{Mode: "700", Output: OutputJSON}, false},
		{"bad mode", ProjectConfig{Mode: "rwx", Output: OutputText}, true},
		{"mode with type bits", ProjectConfig{Mode: "40755", Output: OutputText}, true},
		{"bad output", ProjectConfig{Mode: "0755", Output: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("0750")
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o750), mode)

	mode, err = ParseMode("644")
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o644), mode)

	_, err = ParseMode("9")
	assert.Error(t, err)
}
