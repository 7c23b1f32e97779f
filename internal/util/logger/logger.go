package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	once     sync.Once
	instance *slog.Logger
)

func GetLogger() *slog.Logger {
	once.Do(func() {
		instance = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: levelFromEnv(),
		}))
	})

	return instance
}

func levelFromEnv() slog.Level {
	switch strings.ToUpper(os.Getenv("LOG_LEVEL")) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
