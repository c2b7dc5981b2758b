// Package logging builds the structured loggers shared by the CLI and the
// HTTP server.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger constructs a JSON logger at the given level (debug, info, warn,
// or error).
func NewLogger(level string) (*zap.Logger, error) {
	atomic, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.Config{
		Level:    atomic,
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:    "message",
			TimeKey:       "timestamp",
			LevelKey:      "severity",
			CallerKey:     "caller",
			StacktraceKey: "stacktrace",
			EncodeTime:    zapcore.RFC3339NanoTimeEncoder,
			EncodeLevel:   zapcore.CapitalLevelEncoder,
			EncodeCaller:  zapcore.ShortCallerEncoder,
		},
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: true,
	}
	return cfg.Build()
}

// NewConsoleLogger constructs a human-readable logger for CLI diagnostics.
func NewConsoleLogger(level string) (*zap.Logger, error) {
	atomic, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = atomic
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func parseLevel(level string) (zap.AtomicLevel, error) {
	atomic := zap.NewAtomicLevel()
	if err := atomic.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		return atomic, fmt.Errorf("parsing log level %q: %w", level, err)
	}
	return atomic, nil
}
