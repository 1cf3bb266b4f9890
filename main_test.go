package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DrawSpace/internal/config"
)

func TestParseFlagsDefaults(t *testing.T) {
	cfg, reset, err := parseFlags(nil)
	require.NoError(t, err)
	assert.False(t, reset)
	assert.Equal(t, config.Default(), cfg)
}

func TestParseFlagsOverrides(t *testing.T) {
	cfg, reset, err := parseFlags([]string{"--history-size", "7", "-t", "pen", "--debug", "--reset-properties"})
	require.NoError(t, err)
	assert.True(t, reset)
	assert.Equal(t, 7, cfg.HistorySize)
	assert.Equal(t, "pen", cfg.DefaultTool)
	assert.True(t, cfg.Debug)
}

func TestParseFlagsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drawspace.yaml")
	require.NoError(t, os.WriteFile(path, []byte("history_size: 12\ndefault_tool: ellipse\n"), 0o600))

	cfg, _, err := parseFlags([]string{"-c", path})
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.HistorySize)
	assert.Equal(t, "ellipse", cfg.DefaultTool)

	cfg, _, err = parseFlags([]string{"-c", path, "--history-size", "3"})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.HistorySize, "flags win over the file")
}

func TestParseFlagsErrors(t *testing.T) {
	_, _, err := parseFlags([]string{"--tool", "diamond"})
	assert.True(t, errors.Is(err, config.ErrInvalid))

	_, _, err = parseFlags([]string{"--history-size", "0"})
	assert.True(t, errors.Is(err, config.ErrInvalid))

	_, _, err = parseFlags([]string{"--no-such-flag"})
	assert.Error(t, err)

	_, _, err = parseFlags([]string{"-c", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
