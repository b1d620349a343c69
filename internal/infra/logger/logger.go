package logger

import (
	"log/slog"
	"os"
)

// New собирает логгер сервиса: JSON в stdout, в dev-окружении
// человекочитаемый текст и debug-уровень.
func New(env string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if env == "dev" {
		opts.Level = slog.LevelDebug
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
