package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for t.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9222", cfg.DebuggerAddress)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ElementTimeout)
	assert.Equal(t, 60*time.Second, cfg.PreviewTimeout)
	assert.Equal(t, 60*time.Second, cfg.ExportTimeout)
	assert.Equal(t, 30*time.Second, cfg.SuccessTimeout)
}

func TestLoadOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("UIREPLAY_DEBUGGER_ADDRESS", "127.0.0.1:9333")
	t.Setenv("UIREPLAY_LOG_LEVEL", "debug")
	t.Setenv("UIREPLAY_PREVIEW_TIMEOUT", "90s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9333", cfg.DebuggerAddress)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 90*time.Second, cfg.PreviewTimeout)
	assert.Equal(t, 10*time.Second, cfg.ElementTimeout)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("UIREPLAY_ELEMENT_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UIREPLAY_ELEMENT_TIMEOUT")
}
