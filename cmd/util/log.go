package util

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the logger shared by the command line tools. It discards
// everything until SetupLogging is called.
var Log = zap.NewNop()

// NewLogger builds a zap logger. The level is one of "debug", "info", "warn"
// or "error"; the format is "console" (the default) or "json". Logs go to
// stderr so that results written to stdout stay clean.
func NewLogger(level, format string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, fmt.Errorf("Invalid log level '%s'.", level)
	}

	var conf zap.Config
	switch strings.ToLower(format) {
	case "json":
		conf = zap.NewProductionConfig()
	case "console", "":
		conf = zap.NewDevelopmentConfig()
		conf.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("Invalid log format '%s'.", format)
	}
	conf.Level = zap.NewAtomicLevelAt(lvl)
	conf.OutputPaths = []string{"stderr"}
	conf.EncoderConfig.TimeKey = "ts"
	conf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return conf.Build()
}

// SetupLogging replaces Log with a new logger. See NewLogger.
func SetupLogging(level, format string) error {
	l, err := NewLogger(level, format)
	if err != nil {
		return err
	}
	Log = l
	return nil
}
