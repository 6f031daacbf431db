package logger

import (
	"log/slog"
	"os"
)

// New builds the process-wide structured logger. Request level access
// logging is handled by the echo middleware; this logger covers startup,
// seeding and store failures.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}
