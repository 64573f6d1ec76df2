package observability

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/olivier-w/dotsheet/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type syncBuffer struct {
	strings.Builder
}

func (b *syncBuffer) Sync() error { return nil }

func TestNewWithoutSinksIsNop(t *testing.T) {
	logger := New(config.LoggerConfig{Level: "debug"}, nil)

	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewConsoleHonoursLevel(t *testing.T) {
	var buf syncBuffer
	logger := New(config.LoggerConfig{Level: "warn", Format: "console", ServiceName: "dotsheet"}, &buf)

	logger.Info("hidden")
	logger.Warn("shown", zap.Int("row", 3))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "dotsheet.")
	assert.Contains(t, out, `"row": 3`)
}

func TestNewInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf syncBuffer
	logger := New(config.LoggerConfig{Level: "loud", Format: "json"}, &buf)

	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewWritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dotsheet.log")
	logger := New(config.LoggerConfig{
		Level:       "debug",
		Format:      "console",
		ServiceName: "dotsheet",
		LogFile:     path,
		MaxSize:     1,
	}, nil)

	logger.Named("sim").Debug("drag started", zap.Int("row", 5), zap.Int("col", 5))
	Sync(logger)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	require.True(t, scanner.Scan())
	var entry map[string]any
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "dotsheet.sim", entry["logger"])
	assert.Equal(t, "drag started", entry["msg"])
	assert.Equal(t, float64(5), entry["row"])
}
