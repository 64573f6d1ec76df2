package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/olivier-w/dotsheet/internal/config"
	"github.com/olivier-w/dotsheet/internal/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (*config.Config, error) {
	t.Helper()
	var got *config.Config
	cmd := newRootCmd(func(cfg *config.Config) error {
		got = cfg
		return nil
	})
	cmd.SetArgs(append([]string{}, args...)) // nil would fall back to os.Args
	err := cmd.Execute()
	return got, err
}

func TestRootDefaults(t *testing.T) {
	cfg, err := runRoot(t)
	require.NoError(t, err)

	assert.Equal(t, config.BackendTerminal, cfg.Display.Backend)
	assert.Equal(t, "keep", cfg.Drag.Release)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestRootFlagsOverrideDefaults(t *testing.T) {
	cfg, err := runRoot(t, "--window", "--release", "fling", "--log-file", "x.log", "--log-level", "debug")
	require.NoError(t, err)

	assert.Equal(t, config.BackendWindow, cfg.Display.Backend)
	assert.Equal(t, "fling", cfg.Drag.Release)
	assert.Equal(t, "x.log", cfg.Logger.LogFile)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestRootReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  heat: false\ndrag:\n  release: fling\n"), 0o644))

	cfg, err := runRoot(t, "--config", path)
	require.NoError(t, err)

	assert.False(t, cfg.Display.Heat)
	assert.Equal(t, "fling", cfg.Drag.Release)
}

func TestRootFlagBeatsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("drag:\n  release: fling\n"), 0o644))

	cfg, err := runRoot(t, "--config", path, "--release", "keep")
	require.NoError(t, err)
	assert.Equal(t, "keep", cfg.Drag.Release)
}

func TestRootReadsEnvironment(t *testing.T) {
	t.Setenv("DOTSHEET_DISPLAY_BACKEND", "window")

	cfg, err := runRoot(t)
	require.NoError(t, err)
	assert.Equal(t, config.BackendWindow, cfg.Display.Backend)
}

func TestDisplayErrorExitsOne(t *testing.T) {
	var stderr bytes.Buffer
	code := execute([]string{"--window"}, &stderr, func(*config.Config) error {
		return fmt.Errorf("%w: %w", window.ErrDisplay, errors.New("no display"))
	})

	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: display unavailable: no display\n", stderr.String())
}

func TestNormalQuitExitsZero(t *testing.T) {
	var stderr bytes.Buffer
	code := execute([]string{}, &stderr, func(*config.Config) error { return nil })

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr.String())
}

func TestRootRejectsInvalidRelease(t *testing.T) {
	_, err := runRoot(t, "--release", "bounce")

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRootMissingConfigFile(t *testing.T) {
	_, err := runRoot(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func TestRootRejectsArguments(t *testing.T) {
	_, err := runRoot(t, "extra")

	assert.Error(t, err)
}
