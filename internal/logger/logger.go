package logger

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Fatal(msg string, fields ...zap.Field)

	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})

	// With returns a child logger carrying fields on every entry.
	With(fields ...zap.Field) Logger

	Sync() error
}

type loggerImpl struct {
	base    *zap.Logger
	sugared *zap.SugaredLogger
}

// New builds a zap logger. pretty selects the colored development encoder,
// otherwise JSON production output is used.
func New(level string, pretty bool) Logger {
	var cfg zap.Config
	if pretty {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}

	if lvl, ok := ParseLevel(level); ok {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	base, err := cfg.Build(
		zap.AddStacktrace(zapcore.FatalLevel),
	)
	if err != nil {
		panic(err)
	}

	return wrap(base)
}

// NewNop returns a logger that discards everything.
func NewNop() Logger {
	return wrap(zap.NewNop())
}

func wrap(base *zap.Logger) Logger {
	return &loggerImpl{
		base:    base,
		sugared: base.Sugar(),
	}
}

// ParseLevel maps "debug", "info", "warn" and "error" to zap levels.
func ParseLevel(lvl string) (zapcore.Level, bool) {
	switch lvl {
	case "debug":
		return zapcore.DebugLevel, true
	case "info":
		return zapcore.InfoLevel, true
	case "warn":
		return zapcore.WarnLevel, true
	case "error":
		return zapcore.ErrorLevel, true
	default:
		return zapcore.InfoLevel, false
	}
}

func (l *loggerImpl) Debug(msg string, fields ...zap.Field) { l.base.Debug(msg, fields...) }
func (l *loggerImpl) Info(msg string, fields ...zap.Field)  { l.base.Info(msg, fields...) }
func (l *loggerImpl) Warn(msg string, fields ...zap.Field)  { l.base.Warn(msg, fields...) }
func (l *loggerImpl) Error(msg string, fields ...zap.Field) { l.base.Error(msg, fields...) }
func (l *loggerImpl) Fatal(msg string, fields ...zap.Field) { l.base.Fatal(msg, fields...) }

func (l *loggerImpl) Debugf(t string, args ...interface{}) { l.sugared.Debugf(t, args...) }
func (l *loggerImpl) Infof(t string, args ...interface{})  { l.sugared.Infof(t, args...) }
func (l *loggerImpl) Warnf(t string, args ...interface{})  { l.sugared.Warnf(t, args...) }
func (l *loggerImpl) Errorf(t string, args ...interface{}) { l.sugared.Errorf(t, args...) }

func (l *loggerImpl) With(fields ...zap.Field) Logger { return wrap(l.base.With(fields...)) }

func (l *loggerImpl) Sync() error { return l.base.Sync() }

// Field constructors, so callers log structured fields without importing zap.
func String(key, val string) zap.Field                 { return zap.String(key, val) }
func Strings(key string, val []string) zap.Field       { return zap.Strings(key, val) }
func Int(key string, val int) zap.Field                { return zap.Int(key, val) }
func Bool(key string, val bool) zap.Field              { return zap.Bool(key, val) }
func Duration(key string, val time.Duration) zap.Field { return zap.Duration(key, val) }
func Error(err error) zap.Field                        { return zap.Error(err) }
