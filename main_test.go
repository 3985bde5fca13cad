package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimaq12/minefield/game"
)

func TestParseOptionsDefaults(t *testing.T) {
	opts, err := parseOptions(nil)
	require.NoError(t, err)

	assert.Equal(t, game.DefaultConfig(), opts.config)
	assert.Equal(t, 0, opts.level)
	assert.Equal(t, "info", opts.logLevel)
	assert.Empty(t, opts.logFile)
}

func TestParseOptionsSources(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "minefield.toml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("width = 7\nheight = 6\nmines = 5\nhint = false\n"), 0o644))

	t.Setenv("MINEFIELD_HEIGHT", "12")
	t.Setenv("MINEFIELD_LOG_LEVEL", "debug")

	opts, err := parseOptions([]string{"-config", cfgFile, "-mines", "9"})
	require.NoError(t, err)

	assert.Equal(t, 7, opts.config.Width, "from config file")
	assert.Equal(t, 12, opts.config.Height, "env overrides config file")
	assert.Equal(t, 9, opts.config.Mines, "flag overrides everything")
	assert.False(t, opts.config.Hint)
	assert.Equal(t, "debug", opts.logLevel)
}

func TestParseOptionsLevelOverridesSize(t *testing.T) {
	opts, err := parseOptions([]string{"-level", "2", "-width", "4", "-debug"})
	require.NoError(t, err)

	assert.Equal(t, 15, opts.config.Width)
	assert.Equal(t, 15, opts.config.Height)
	assert.Equal(t, 40, opts.config.Mines)
	assert.True(t, opts.config.DebugReveal)
}

func TestParseOptionsRejectsUnknownLevel(t *testing.T) {
	for _, level := range []string{"4", "-1"} {
		_, err := parseOptions([]string{"-width", "5", "-height", "4", "-mines", "3", "-level", level})
		assert.Error(t, err, "level %s", level)
	}

	opts, err := parseOptions([]string{"-width", "5", "-height", "4", "-mines", "3"})
	require.NoError(t, err)
	assert.Equal(t, 5, opts.config.Width)
	assert.Equal(t, 4, opts.config.Height)
	assert.Equal(t, 3, opts.config.Mines)
}

func TestParseOptionsRejectsBadFlag(t *testing.T) {
	_, err := parseOptions([]string{"-width", "wide"})
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	_, _, err := newLogger("loud", "")
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "minefield.log")
	log, closer, err := newLogger("warn", file)
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	log.Info("dropped")
	log.Warn("kept")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kept")
	assert.NotContains(t, string(data), "dropped")
}
