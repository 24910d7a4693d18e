package app

import (
	"log/slog"

	"github.com/thenoetrevino/taskcard/internal/lang"
	"github.com/thenoetrevino/taskcard/internal/markup"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger     *slog.Logger
	strings    lang.Table
	renderOpts []markup.Option
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithStrings sets the localized string table
func WithStrings(strings lang.Table) Option {
	return func(cfg *appConfig) {
		if strings != nil {
			cfg.strings = strings
		}
	}
}

// WithRenderOptions adds options for the description renderer
func WithRenderOptions(opts ...markup.Option) Option {
	return func(cfg *appConfig) {
		cfg.renderOpts = append(cfg.renderOpts, opts...)
	}
}
