package config

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// ParseLevel maps LOG_LEVEL values to slog levels; unknown values are info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogger builds the process logger: JSON to stdout and, when logFile is
// set, JSON to that file as well. The returned cleanup closes the file.
func SetupLogger(level, logFile string) (*slog.Logger, func() error) {
	if logFile == "" {
		return newLogger(level, os.Stdout, nil), func() error { return nil }
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger := newLogger(level, os.Stdout, nil)
		logger.Error("failed to open log file, using stdout only", "error", err, "file", logFile)
		return logger, func() error { return nil }
	}
	return newLogger(level, os.Stdout, file), file.Close
}

// newLogger writes JSON to stdout, fanned out to file when it is non-nil.
func newLogger(level string, stdout, file io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if file == nil {
		return slog.New(slog.NewJSONHandler(stdout, opts))
	}
	return slog.New(slogmulti.Fanout(
		slog.NewJSONHandler(stdout, opts),
		slog.NewJSONHandler(file, opts),
	))
}
