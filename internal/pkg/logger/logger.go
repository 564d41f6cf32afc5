//go:generate mockgen -destination=mock_logger.go -package=${GOPACKAGE} -source=logger.go
package logger

import (
	"context"

	"go.uber.org/zap"
)

type LoggerInterface interface {
	AddFuncName(name string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

type Logger struct {
	zl       *zap.Logger
	funcName string
}

// New builds a development logger for "dev" and "local", production json otherwise.
func New(service, env string) *Logger {
	var (
		zl  *zap.Logger
		err error
	)

	switch env {
	case "dev", "local":
		zl, err = zap.NewDevelopment()
	default:
		zl, err = zap.NewProduction()
	}
	if err != nil {
		zl = zap.NewNop()
	}

	return &Logger{zl: zl.With(zap.String("service", service), zap.String("env", env))}
}

func NewNop() *Logger {
	return &Logger{zl: zap.NewNop()}
}

// With returns a child logger carrying extra string fields.
func (l *Logger) With(kv ...string) *Logger {
	fields := make([]zap.Field, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		fields = append(fields, zap.String(kv[i], kv[i+1]))
	}

	return &Logger{zl: l.zl.With(fields...), funcName: l.funcName}
}

func (l *Logger) AddFuncName(name string) {
	l.funcName = name
}

func (l *Logger) Info(msg string) {
	l.zl.Info(msg, l.fields()...)
}

func (l *Logger) Warn(msg string) {
	l.zl.Warn(msg, l.fields()...)
}

func (l *Logger) Error(msg string) {
	l.zl.Error(msg, l.fields()...)
}

func (l *Logger) Sync() {
	_ = l.zl.Sync()
}

func (l *Logger) fields() []zap.Field {
	if l.funcName == "" {
		return nil
	}

	return []zap.Field{zap.String("func", l.funcName)}
}

// FromContext never returns nil: a missing logger degrades to a no-op one.
func FromContext(ctx context.Context, key any) LoggerInterface {
	if l, ok := ctx.Value(key).(LoggerInterface); ok && l != nil {
		return l
	}

	return NewNop()
}
