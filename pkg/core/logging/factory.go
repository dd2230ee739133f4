// ============================================================================
// strlab - String Manipulation Lab
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating foundation loggers from config
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mdwlog "github.com/msto63/strlab/foundation/core/log"
	"github.com/msto63/strlab/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Name of the component, shown as the logger name
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: json, text, console or logfmt (default: text)
	Format string

	// Output writer (default: stderr)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer

	// EnableCaller adds file:line to every entry
	EnableCaller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  config.DefaultLogLevel,
		Format: config.DefaultLogFormat,
	}
}

// FromConfig derives a LoggerConfig from the application configuration
func FromConfig(cfg *config.Config) LoggerConfig {
	lc := DefaultLoggerConfig(cfg.General.Name)
	lc.Level = cfg.General.LogLevel
	lc.Format = cfg.General.LogFormat
	return lc
}

// NewLogger creates a new foundation logger. Task output goes to stdout,
// so logs default to stderr.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.DefaultLevel()
	}

	format, _ := mdwlog.ParseFormat(cfg.Format)

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.EnableCaller,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}
