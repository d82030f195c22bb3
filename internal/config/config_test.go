package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configs", "rdprint.toml")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "loading must not create the config file")
}

func TestLoadConfigFillsMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rdprint.toml")
	content := `
[auth]
password = "letmein"

[print]
close_failed_workbooks = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "letmein", cfg.Auth.Password)
	assert.Equal(t, ".", cfg.Scan.Directory)
	assert.Equal(t, "logs", cfg.Log.Directory)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Print.CloseOnFailure())
}

func TestLoadConfigRejectsUnknownLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rdprint.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"chatty\"\n"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRejectsMalformedToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rdprint.toml")
	require.NoError(t, os.WriteFile(path, []byte("[auth\npassword = "), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configs", "rdprint.toml")

	require.NoError(t, SaveConfig(path, Default()))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestCloseOnFailureDefaultsToTrue(t *testing.T) {
	assert.True(t, PrintConfig{}.CloseOnFailure())
}

func TestLoadConfigAcceptsUppercaseLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rdprint.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \" INFO \"\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
}
