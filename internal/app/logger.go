package app

import (
	"log/slog"
	"os"
)

// NewLogger builds the process logger. Production deployments log JSON with
// call sites; the pretty format drops call sites for readable dev output.
func NewLogger(cfg *Config) *slog.Logger {
	if cfg != nil && cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{AddSource: true}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
