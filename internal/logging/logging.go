// Package logging builds the zap logger for jetdiag. Everything goes to
// stderr: stdout is reserved for the report itself.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. verbose forces debug level; otherwise the
// level comes from JETDIAG_LOG_LEVEL, defaulting to warn so an interactive
// run shows nothing but the report.
func New(verbose bool) *zap.Logger {
	level := parseLevel(os.Getenv("JETDIAG_LOG_LEVEL"))
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "console",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
	}

	log, err := cfg.Build()
	if err != nil {
		// A broken static config is a programming error, but the tool is
		// still useful without logs.
		return zap.NewNop()
	}
	return log
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "TRACE", "DEBUG", "debug":
		return zapcore.DebugLevel
	case "INFO", "info":
		return zapcore.InfoLevel
	case "ERROR", "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}
