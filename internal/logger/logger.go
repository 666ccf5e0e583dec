// Package logger configures the global structured logger
package logger

import (
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB = 5
	maxBackups   = 3
	maxAgeDays   = 28
)

// Init sets up the default logger to write JSON records to a rotated
// log file. Setting VIGIL_DEBUG enables debug-level records, including
// dumps of every message the timer processes.
func Init(logFilePath string) {
	level := slog.LevelInfo

	if os.Getenv("VIGIL_DEBUG") != "" {
		level = slog.LevelDebug
	}

	w := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
