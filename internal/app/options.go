package app

import (
	"log/slog"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	defaultLanes []string
	logger       *slog.Logger
}

// WithDefaultLanes sets the lanes created with every new board.
// An empty, non-nil slice creates boards without lanes.
func WithDefaultLanes(names []string) Option {
	return func(cfg *appConfig) {
		cfg.defaultLanes = names
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
