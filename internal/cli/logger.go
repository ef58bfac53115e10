package cli

import (
	"fmt"
	"log/slog"
	"os"

	"edgebubble/internal/config"
)

// newLogger opens the log file named by cfg. The terminal belongs to the TUI,
// so nothing is ever logged to stdout or stderr. An empty path discards.
func newLogger(cfg *config.Config) (*slog.Logger, func() error, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	if cfg.Log.File == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}

	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open log file: %w", err)
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(handler), f.Close, nil
}
