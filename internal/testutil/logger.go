package testutil

import (
	"io"
	"log/slog"

	"github.com/dtroode/repairctl/internal/logger"
)

// MakeNoopLogger returns a logger that discards records. The level is debug
// so every logging call site still formats its arguments.
func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, int(slog.LevelDebug))
}
