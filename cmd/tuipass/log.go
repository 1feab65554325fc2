package main

import (
	"io"
	"log/slog"
	"strings"
)

func detectLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// setupLogger installs a text handler on w as the default slog logger.
func setupLogger(w io.Writer, level string) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: detectLogLevel(level)})
	slog.SetDefault(slog.New(handler))
}
