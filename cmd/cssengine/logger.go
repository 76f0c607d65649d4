package main

import (
	"os"

	"github.com/yacobolo/cssengine/internal/cssgen"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns the console logger for the CLI. Everything goes to
// stderr so stdout stays clean for generated CSS.
func newLogger(quiet, verbose, colors bool) *zap.Logger {
	if quiet {
		return zap.NewNop()
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if colors {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}

// commandLogger builds the logger from the global flags in koanf state
func commandLogger() *zap.Logger {
	quiet := getBoolWithFallback("quiet", "quiet", false)
	verbose := getBoolWithFallback("verbose", "verbose", false)
	return newLogger(quiet, verbose, useColors())
}

func useColors() bool {
	return cssgen.ShouldUseColors(cssgen.LintConfig{UseColors: getBoolWithFallback("color", "color", false)})
}
