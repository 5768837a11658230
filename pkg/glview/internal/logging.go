package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logFile *os.File
	logPath string

	sinkOnce sync.Once
	sink     io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   = &slog.LevelVar{}
)

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created on first use. An empty path logs to stdout only.
// Must be called before the first logger is requested.
func SetLogPath(path string) {
	logPath = path
}

func openSink() io.Writer {
	sinkOnce.Do(func() {
		sink = os.Stdout
		if logPath == "" {
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Console-only when the file is unavailable
			return
		}
		logFile = f
		sink = io.MultiWriter(os.Stdout, logFile)
	})
	return sink
}

func newJSONLogger(level *slog.LevelVar, component string) *slog.Logger {
	handler := slog.NewJSONHandler(openSink(), &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("component", component)
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		logger = newJSONLogger(levelVar, "app")
	})
	return logger
}

// GetInternalLogger returns the logger used by the platform layer itself.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLogger = newJSONLogger(internalLevelVar, "glview")
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	internalLevelVar.Set(level)
}

// ParseLogLevel maps "debug", "info", "warn"/"warning" and "error" to a
// slog level. Anything else is info.
func ParseLogLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(raw string) {
	SetLogLevel(ParseLogLevel(raw))
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
