package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"staffdir/internal/platform/config"
)

// New builds the process logger. Unknown levels fall back to info.
func New(w io.Writer, format, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func ParseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Setup installs the configured logger as the slog default.
func Setup(cfg config.Config) *slog.Logger {
	logger := New(os.Stdout, cfg.LogFormat, cfg.LogLevel).With("env", cfg.Environment)
	slog.SetDefault(logger)
	return logger
}
