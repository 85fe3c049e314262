// Package logging builds the structured logger. The TUI owns the terminal, so
// log output always goes to a file as JSON lines.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TimeLayout is the timestamp format written to the log file.
const TimeLayout = "2006-01-02T15:04:05.000Z0700"

// Options configure New.
type Options struct {
	Path    string
	Level   string // zap level name; empty means info
	Verbose bool   // forces debug
}

// New returns a JSON logger appending to opts.Path.
func New(opts Options) (*zap.Logger, error) {
	if strings.TrimSpace(opts.Path) == "" {
		return nil, fmt.Errorf("log path is empty")
	}

	level := zapcore.InfoLevel
	if name := strings.TrimSpace(opts.Level); name != "" {
		parsed, err := zapcore.ParseLevel(name)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Sampling = nil
	config.OutputPaths = []string{opts.Path}
	config.ErrorOutputPaths = []string{opts.Path}
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(TimeLayout)

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
