package logger

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger. The console owns the terminal while running,
// so log output goes to a file rather than stdout.
type Logger struct {
	*slog.Logger
}

func New(level string, file string) *Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	var out io.Writer = os.Stderr
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			out = f
		}
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl})
	return &Logger{Logger: slog.New(handler)}
}
