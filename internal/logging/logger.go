// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging provides the structured logger shared by the CLI and the
// TUI. The TUI owns the terminal, so log output goes to a file by default.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// EnvLevel overrides the configured level when set.
const EnvLevel = "STYLECONF_LOG_LEVEL"

// Config captures options for configuring the global logger.
type Config struct {
	Level  string    // "debug", "info", "warn", ... (default "info")
	Output io.Writer // optional writer; takes precedence over File
	File   string    // log file, appended to; empty disables file output
}

var (
	mu         sync.RWMutex
	configured bool
	base       = zerolog.Nop()
	closer     io.Closer
)

// Configure initialises the global logger. Only the first call has an effect;
// until then every logger discards its output.
func Configure(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()
	if configured {
		return nil
	}

	l, c, err := build(cfg)
	if err != nil {
		return err
	}
	base, closer, configured = l, c, true
	return nil
}

// Close flushes and closes the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	base = zerolog.Nop()
	return err
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}

// ParseLevel resolves a level name, honouring the environment override.
// Unknown or empty names yield info.
func ParseLevel(name string) zerolog.Level {
	if env := os.Getenv(EnvLevel); env != "" {
		name = env
	}
	if name == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func build(cfg Config) (zerolog.Logger, io.Closer, error) {
	writer := cfg.Output
	var c io.Closer
	if writer == nil {
		if cfg.File == "" {
			return zerolog.Nop(), nil, nil
		}
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
		}
		writer, c = f, f
	}

	zerolog.TimeFieldFormat = time.RFC3339
	l := zerolog.New(writer).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", "styleconf").
		Logger()
	return l, c, nil
}
