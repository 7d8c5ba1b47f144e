package logger

import (
	"log/slog"
	"os"

	"GameServer_Backend/internal/config"
)

// Init sets up the process-wide JSON logger at the configured level.
func Init(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
