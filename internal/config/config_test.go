package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/mutker/errchain"
	"codeberg.org/mutker/errchain/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	configContent := []byte(`
log_level = "debug"
report = true
report_db = "/path/to/report.db"
`)
	configPath := filepath.Join(t.TempDir(), "errchain.toml")
	err := os.WriteFile(configPath, configContent, 0o600)
	require.NoError(t, err)

	t.Setenv("ERRCHAIN_CONFIG", configPath)
	resetArgs(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel, "Expected LogLevel debug")
	assert.True(t, cfg.Report, "Expected Report true")
	assert.Equal(t, "/path/to/report.db", cfg.ReportDB, "Expected ReportDB /path/to/report.db")
}

func TestLoadDefaults(t *testing.T) {
	// Ensure no config file is used
	t.Setenv("ERRCHAIN_CONFIG", "")
	resetArgs(t)

	cfg, err := config.Load()
	require.NoError(t, err, "Failed to load config")

	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel, "Expected default LogLevel info")
	assert.False(t, cfg.Report, "Expected default Report false")
	assert.Equal(t, "errchain-report.db", cfg.ReportDB, "Expected default ReportDB")
}

func TestLoadConfigFileInvalidFormat(t *testing.T) {
	configContent := []byte(`
This is not a valid TOML file
`)
	configPath := filepath.Join(t.TempDir(), "errchain.toml")
	err := os.WriteFile(configPath, configContent, 0o600)
	require.NoError(t, err)

	t.Setenv("ERRCHAIN_CONFIG", configPath)
	resetArgs(t)

	_, err = config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestInvalidLogLevel(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "errchain.toml")
	err := os.WriteFile(configPath, []byte(`log_level = "loud"`), 0o600)
	require.NoError(t, err)

	t.Setenv("ERRCHAIN_CONFIG", configPath)
	resetArgs(t)

	_, err = config.Load()
	require.Error(t, err)

	invalid, ok := errchain.AsType[config.InvalidLogLevelError](err)
	require.True(t, ok, "expected a matchable InvalidLogLevelError")
	assert.Equal(t, "loud", invalid.Level)
}

func TestLogLevelFlag(t *testing.T) {
	t.Setenv("ERRCHAIN_CONFIG", "")

	// Save original args and restore after test
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"errchain-demo", "--log-level", "debug"}

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel, "Expected LogLevel to be set by flag")
}

func resetArgs(t *testing.T) {
	t.Helper()

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"errchain-demo"}
}
