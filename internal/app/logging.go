package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/five82/liftoff/internal/config"
)

// OpenLog opens the configured log file for appending and returns a text
// logger writing to it. The terminal belongs to the UI, so nothing is logged
// to stderr.
func OpenLog(cfg config.Config) (*slog.Logger, func() error, error) {
	if err := os.MkdirAll(cfg.LogDir(), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	handler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: cfg.LogLevel})
	return slog.New(handler), file.Close, nil
}
