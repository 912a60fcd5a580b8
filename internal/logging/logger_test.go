package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/splitscreen/internal/config"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever

	log, err := NewLogger(&cfg)
	require.NoError(t, err)
	defer log.Close()

	assert.Empty(t, Red)
	assert.Empty(t, NC)

	// Safe to log without a file sink.
	log.Info("hello %s", "world")
	log.Debug(false, "suppressed")
}

func TestNewLogger_ForcedColors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorAlways

	log, err := NewLogger(&cfg)
	require.NoError(t, err)
	defer log.Close()

	assert.NotEmpty(t, Red)
	assert.NotEmpty(t, Green)
	assert.Equal(t, "\033[0m", NC)

	// Reset globals for other tests.
	cfg.ColorMode = config.ColorNever
	reset, err := NewLogger(&cfg)
	require.NoError(t, err)
	reset.Close()
}

func TestNewLogger_WithFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "run.log")

	log, err := NewLogger(&cfg)
	require.NoError(t, err)

	log.Info("probing inputs")
	log.Warn("duration mismatch")
	log.Debug(true, "verbose detail")
	log.Debug(false, "not written")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "[INFO] probing inputs")
	assert.Contains(t, text, "[WARN] duration mismatch")
	assert.Contains(t, text, "[DEBUG] verbose detail")
	assert.NotContains(t, text, "not written")
	// File sink stays plain even when colors are on elsewhere.
	assert.NotContains(t, text, "\033[")
}

func TestLogger_CloseWithoutFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever

	log, err := NewLogger(&cfg)
	require.NoError(t, err)
	assert.NoError(t, log.Close())
	assert.NoError(t, log.Close())
}
