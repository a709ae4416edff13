package logger

import (
	"log/slog"
	"os"
)

// New creates a JSON slog.Logger writing to stdout at info level.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler)
}
