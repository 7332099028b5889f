package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/crabout/internal/config"
)

// withFlags sets global flags for one test and restores them afterwards.
func withFlags(t *testing.T, difficulty, cfgPath, level, logFile string) {
	t.Helper()
	oldDifficulty, oldConfig, oldLevel, oldFile := flagDifficulty, flagConfig, flagLogLevel, flagLogFile
	flagDifficulty, flagConfig, flagLogLevel, flagLogFile = difficulty, cfgPath, level, logFile
	t.Cleanup(func() {
		flagDifficulty, flagConfig, flagLogLevel, flagLogFile = oldDifficulty, oldConfig, oldLevel, oldFile
	})
	t.Setenv("HOME", t.TempDir())
}

func TestLoadGameConfigPreset(t *testing.T) {
	withFlags(t, "hard", "", "info", "")

	cfg, err := loadGameConfig()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Gameplay.Lives)
}

func TestLoadGameConfigUnknownPreset(t *testing.T) {
	withFlags(t, "nightmare", "", "info", "")

	_, err := loadGameConfig()
	assert.Error(t, err)
}

func TestLoadGameConfigInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gameplay:\n  lives: 0\n"), 0o600))
	withFlags(t, "", path, "info", "")

	_, err := loadGameConfig()
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestNewLoggerLevel(t *testing.T) {
	withFlags(t, "", "", "debug", "")

	var buf bytes.Buffer
	logger, closeLog, err := newLogger(&buf)
	require.NoError(t, err)
	defer closeLog() //nolint:errcheck

	assert.Equal(t, log.DebugLevel, logger.GetLevel())
	logger.Debug("hello", "k", 1)
	assert.Contains(t, buf.String(), "hello")
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crabout.log")
	withFlags(t, "", "", "info", path)

	var buf bytes.Buffer
	logger, closeLog, err := newLogger(&buf)
	require.NoError(t, err)
	logger.Info("to file")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Empty(t, buf.String())
}

func TestNewLoggerBadLevel(t *testing.T) {
	withFlags(t, "", "", "loud", "")

	_, _, err := newLogger(&bytes.Buffer{})
	assert.Error(t, err)
}

func TestConfigCommandPrintsYAML(t *testing.T) {
	withFlags(t, "easy", "", "info", "")

	var out bytes.Buffer
	configCmd.SetOut(&out)
	t.Cleanup(func() { configCmd.SetOut(nil) })
	require.NoError(t, runConfig(configCmd, nil))

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &cfg))
	assert.Equal(t, 5, cfg.Gameplay.Lives)
	assert.Equal(t, 130.0, cfg.Paddle.Width)
}

func TestRuntimeConfigSeed(t *testing.T) {
	old := flagSeed
	t.Cleanup(func() { flagSeed = old })

	flagSeed = 42
	assert.Equal(t, int64(42), runtimeConfig(80, 24).Seed)

	flagSeed = 0
	assert.NotZero(t, runtimeConfig(80, 24).Seed)
}
