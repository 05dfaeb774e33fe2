// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rlog provides structured logging for the routing driver. It
// mirrors inp/logging.go's shape: a thin wrapper initialised once at
// startup and consulted from every component that needs to report a
// fatal error or a non-fatal warning.
package rlog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger and prints "WARNING - " / "ERROR - "
// console prefixes for warnings and errors.
type Logger struct {
	z zerolog.Logger
}

// Config controls console/file sinks and verbosity.
type Config struct {
	Level    string // "debug", "info", "warn", "error"
	FilePath string // optional; empty disables the file sink
}

// New builds a Logger writing an uncolored console stream and, optionally, a
// structured JSON file sink (mirroring a per-run .log file).
func New(cfg Config) (*Logger, error) {
	console := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
		NoColor:    true,
		FormatLevel: func(i interface{}) string {
			switch i {
			case "warn":
				return "WARNING -"
			case "error", "fatal":
				return "ERROR -"
			default:
				return ""
			}
		},
	}

	var out io.Writer = console
	if cfg.FilePath != "" {
		f, err := os.Create(cfg.FilePath)
		if err != nil {
			return nil, err
		}
		out = zerolog.MultiLevelWriter(console, f)
	}

	z := zerolog.New(out).With().Timestamp().Logger()
	switch cfg.Level {
	case "debug":
		z = z.Level(zerolog.DebugLevel)
	case "warn":
		z = z.Level(zerolog.WarnLevel)
	case "error":
		z = z.Level(zerolog.ErrorLevel)
	default:
		z = z.Level(zerolog.InfoLevel)
	}
	return &Logger{z: z}, nil
}

// Warnf logs a non-fatal warning naming the offending field.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.z.Warn().Msgf(format, args...)
}

// Errorf logs a fatal error naming the offending field.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.z.Error().Msgf(format, args...)
}

// Infof logs routine progress (e.g. interval k of M completed).
func (l *Logger) Infof(format string, args ...interface{}) {
	l.z.Info().Msgf(format, args...)
}

// Debugf logs fine-grained diagnostics (e.g. per sub-step state).
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.z.Debug().Msgf(format, args...)
}
