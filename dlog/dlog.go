// Package dlog provides constructors for a structured logger, a thin
// wrapper around zap.SugaredLogger's logging helpers. The engine packages
// themselves do not log.
package dlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a development-style sugared logger: console encoding, colored
// levels, info verbosity. Intended for test and CLI use; production
// embedders should build their own zap.Logger and call Wrap.
func New(name string) (*zap.SugaredLogger, error) {
	logger, err := zap.Config{
		Level:    zap.NewAtomicLevelAt(zap.InfoLevel),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		DisableStacktrace: true,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
	}.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar().Named(name), nil
}

// Wrap adapts a caller-supplied zap.Logger into the sugared form this
// package's callers expect.
func Wrap(l *zap.Logger) *zap.SugaredLogger { return l.Sugar() }

// NewNop returns a logger that discards everything, for callers that need
// a logger value but no output (e.g. tests).
func NewNop() *zap.SugaredLogger { return zap.NewNop().Sugar() }
