// Package logger wraps go.uber.org/zap behind a small interface so the rest
// of the application does not depend on zap directly.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields carries structured context attached to a log entry.
type Fields map[string]interface{}

// Logger is the logging interface used by all components.
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)

	// WithFields returns a Logger that includes the given fields in every
	// subsequent entry.
	WithFields(fields Fields) Logger
}

// Config controls logger construction.
type Config struct {
	// Verbosity selects the minimum level: 0 warn, 1 info, 2+ debug.
	Verbosity int

	// Output overrides the log destination. Nil means os.Stderr; logs never
	// go to stdout, which is reserved for the rendered tree.
	Output io.Writer
}

type zapLogger struct {
	zl *zap.Logger
}

// New builds a Logger writing console-encoded entries to cfg.Output.
func New(cfg Config) Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(out),
		levelFor(cfg.Verbosity),
	)

	return &zapLogger{zl: zap.New(core)}
}

// Nop returns a Logger that discards everything. Handy for tests.
func Nop() Logger {
	return &zapLogger{zl: zap.NewNop()}
}

func levelFor(verbosity int) zapcore.LevelEnabler {
	switch verbosity {
	case 0:
		return zapcore.WarnLevel
	case 1:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

func (l *zapLogger) Debug(msg string) { l.zl.Debug(msg) }
func (l *zapLogger) Info(msg string)  { l.zl.Info(msg) }
func (l *zapLogger) Warn(msg string)  { l.zl.Warn(msg) }
func (l *zapLogger) Error(msg string) { l.zl.Error(msg) }

func (l *zapLogger) WithFields(fields Fields) Logger {
	zf := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zf = append(zf, zap.Any(k, v))
	}
	return &zapLogger{zl: l.zl.With(zf...)}
}
