package logger

import (
	"log/slog"
	"os"
)

type Logger struct {
	*slog.Logger
}

// New picks the handler by environment: readable text for dev and test, JSON for everything else.
func New(env string) *Logger {
	var handler slog.Handler

	switch env {
	case "dev", "test":
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	default:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	return &Logger{Logger: slog.New(handler).With(slog.String("env", env))}
}
