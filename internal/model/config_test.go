package model_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listoapp/listo/internal/model"
)

func TestLoadConfig_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := model.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.SweepIntervalSec)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestLoadConfig_ReadsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"data_dir: /tmp/listo\nsweep_interval_sec: 30\nlog:\n  level: debug\n"), 0o644))

	cfg, err := model.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/listo", cfg.DataDir)
	assert.Equal(t, 30, cfg.SweepIntervalSec)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "default", cfg.Display.Theme, "missing keys keep defaults")
}

func TestLoadConfig_RejectsNonPositiveInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sweep_interval_sec: -5\n"), 0o644))

	cfg, err := model.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.SweepIntervalSec)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := &model.Config{
		DataDir:          "/tmp/listo",
		SweepIntervalSec: 120,
		Log:              model.LogConfig{Level: "warn"},
		Display:          model.DisplayConfig{Theme: "default"},
	}

	require.NoError(t, model.SaveConfig(path, cfg))

	loaded, err := model.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.DataDir, loaded.DataDir)
	assert.Equal(t, cfg.SweepIntervalSec, loaded.SweepIntervalSec)
	assert.Equal(t, "warn", loaded.Log.Level)
}
