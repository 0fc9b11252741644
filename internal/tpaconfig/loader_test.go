package tpaconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultUsesBuiltInDefaults(t *testing.T) {
	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, int64(100), cfg.DefaultSimplifyBudgetMS)
	assert.Equal(t, 100, cfg.DefaultMaxDP)
}

func TestLoadOverridesFromFile(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "tpaconfig_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	configPath := filepath.Join(tempDir, "tpa.toml")
	content := `
default_simplify_budget_ms = 250
default_max_dp = 50
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, int64(250), cfg.DefaultSimplifyBudgetMS)
	assert.Equal(t, 50, cfg.DefaultMaxDP)
	assert.Equal(t, configPath, cfg.GetConfigPath())
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/tpa.toml")
	assert.Error(t, err)
}

func TestLoadRejectsInvalidBudget(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "tpaconfig_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	configPath := filepath.Join(tempDir, "tpa.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("default_simplify_budget_ms = -1\n"), 0644))

	_, err = Load(configPath)
	assert.Error(t, err)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("TPA_DEFAULT_MAX_DP", "12")
	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.DefaultMaxDP)
}
