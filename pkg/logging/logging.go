// Package logging configures structured logging with tint.
//
// Usage:
//
//	logger := logging.Setup(slog.LevelInfo, logging.FormatText) // colored, to stderr
//	logger := logging.Setup(slog.LevelDebug, logging.FormatJSON) // one JSON object per line
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Output formats accepted by New and Setup.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Setup builds a logger writing to stderr, installs it as the slog default
// and returns it.
func Setup(level slog.Level, format string) *slog.Logger {
	logger := New(os.Stderr, level, format)
	slog.SetDefault(logger)
	return logger
}

// New builds a logger writing to w. Any format other than FormatJSON
// yields colored tint output.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	if format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  level == slog.LevelDebug,
		NoColor:    !isTerminal(w),
	}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
