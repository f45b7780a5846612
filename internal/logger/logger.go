package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// InitLogger installs a text slog handler as the default logger. Records go
// to stdout and, when logPath is not empty, are appended to logPath too.
// An unknown level falls back to INFO with a warning.
func InitLogger(logPath string, logLevel string) (func() error, error) {
	var writer io.Writer = os.Stdout
	closeFn := func() error { return nil }

	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o666)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		writer = io.MultiWriter(os.Stdout, logFile)
		closeFn = logFile.Close
	}

	level, err := convertStringToLogLevel(logLevel)
	slog.SetDefault(slog.New(newHandler(writer, level)))

	if err != nil {
		slog.Warn(err.Error())
	}
	return closeFn, nil
}

func newHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}

func convertStringToLogLevel(levelStr string) (slog.Level, error) {
	switch levelStr {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q, using INFO", levelStr)
	}
}
