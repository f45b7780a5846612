package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertStringToLogLevel(t *testing.T) {
	for input, expected := range map[string]slog.Level{
		"DEBUG": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"ERROR": slog.LevelError,
	} {
		level, err := convertStringToLogLevel(input)
		require.NoError(t, err)
		assert.Equal(t, expected, level)
	}

	level, err := convertStringToLogLevel("LOUD")
	assert.Error(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestInitLogger_WritesToFile(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	path := filepath.Join(t.TempDir(), "ossim.log")
	closeFn, err := InitLogger(path, "DEBUG")
	require.NoError(t, err)

	slog.Debug("scheduled", "pid", "A")
	require.NoError(t, closeFn())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "msg=scheduled pid=A")
}
