package logging

import (
	"context"
	"sort"

	"go.uber.org/zap"
)

// ZapLogger adapts a *zap.Logger to the Logger interface.
// The zap core keeps its own level; SetLevel adds a filter on top of it.
type ZapLogger struct {
	base   *zap.Logger
	level  Level
	fields Fields
}

// NewZapLogger wraps base. A nil base yields a no-op zap logger.
func NewZapLogger(base *zap.Logger) *ZapLogger {
	if base == nil {
		base = zap.NewNop()
	}
	return &ZapLogger{
		base:   base,
		level:  DebugLevel,
		fields: make(Fields),
	}
}

// NewProductionZapLogger builds a JSON zap logger at the given level.
func NewProductionZapLogger(level Level) (*ZapLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = toZapLevel(level)
	base, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	l := NewZapLogger(base)
	l.level = level
	return l, nil
}

func toZapLevel(level Level) zap.AtomicLevel {
	switch level {
	case DebugLevel:
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case WarnLevel:
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	case ErrorLevel:
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	case FatalLevel:
		return zap.NewAtomicLevelAt(zap.FatalLevel)
	default:
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
}

// Zap returns the underlying zap logger.
func (z *ZapLogger) Zap() *zap.Logger {
	return z.base
}

func (z *ZapLogger) zapFields(err error, extra ...Fields) []zap.Field {
	all := mergeFields(z.fields, extra...)
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(keys)+1)
	for _, k := range keys {
		out = append(out, zap.Any(k, all[k]))
	}
	if err != nil {
		out = append(out, zap.Error(err))
	}
	return out
}

func (z *ZapLogger) Debug(msg string, fields ...Fields) {
	if z.level > DebugLevel {
		return
	}
	z.base.Debug(msg, z.zapFields(nil, fields...)...)
}

func (z *ZapLogger) Info(msg string, fields ...Fields) {
	if z.level > InfoLevel {
		return
	}
	z.base.Info(msg, z.zapFields(nil, fields...)...)
}

func (z *ZapLogger) Warn(msg string, fields ...Fields) {
	if z.level > WarnLevel {
		return
	}
	z.base.Warn(msg, z.zapFields(nil, fields...)...)
}

func (z *ZapLogger) Error(err error, msg string, fields ...Fields) {
	if z.level > ErrorLevel {
		return
	}
	z.base.Error(msg, z.zapFields(err, fields...)...)
}

func (z *ZapLogger) Fatal(err error, msg string, fields ...Fields) {
	z.base.Fatal(msg, z.zapFields(err, fields...)...)
}

func (z *ZapLogger) WithFields(fields Fields) Logger {
	return &ZapLogger{
		base:   z.base,
		level:  z.level,
		fields: mergeFields(z.fields, fields),
	}
}

func (z *ZapLogger) WithContext(ctx context.Context) Logger {
	if fields, ok := fieldsFromContext(ctx); ok {
		return z.WithFields(fields)
	}
	return z
}

func (z *ZapLogger) SetLevel(level Level) {
	z.level = level
}
