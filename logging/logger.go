// Package logging provides the structured logger the planner and its
// collaborators use: a zap-backed Logger with both plain and
// context-aware leveled calls, and pluggable Appenders (see
// appender.go) as the log sink.
package logging

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logging capability used throughout this
// module. The "C"-prefixed methods accept a context.Context but ignore
// it: this package reads neither fields nor cancellation or deadlines
// off the context. Request-scoped fields (such as a planner run id) are
// attached with With.
type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	CDebugf(ctx context.Context, template string, args ...interface{})
	CInfof(ctx context.Context, template string, args ...interface{})
	With(args ...interface{}) Logger
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewLogger constructs a Logger writing to the given Appenders. With no
// appenders, it writes to stdout via ConsoleAppender.
func NewLogger(appenders ...Appender) Logger {
	if len(appenders) == 0 {
		appenders = []Appender{NewStdoutAppender()}
	}
	cores := make([]zapcore.Core, 0, len(appenders))
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encCfg)
	for _, a := range appenders {
		cores = append(cores, &appenderCore{appender: a, encoder: encoder})
	}
	core := zapcore.NewTee(cores...)
	return &zapLogger{sugar: zap.New(core).Sugar()}
}

func (l *zapLogger) Debug(args ...interface{})  { l.sugar.Debug(args...) }
func (l *zapLogger) Info(args ...interface{})   { l.sugar.Info(args...) }
func (l *zapLogger) Debugf(t string, a ...interface{}) { l.sugar.Debugf(t, a...) }
func (l *zapLogger) Infof(t string, a ...interface{})  { l.sugar.Infof(t, a...) }
func (l *zapLogger) Warnf(t string, a ...interface{})  { l.sugar.Warnf(t, a...) }
func (l *zapLogger) Errorf(t string, a ...interface{}) { l.sugar.Errorf(t, a...) }

func (l *zapLogger) CDebugf(_ context.Context, t string, a ...interface{}) { l.sugar.Debugf(t, a...) }
func (l *zapLogger) CInfof(_ context.Context, t string, a ...interface{})  { l.sugar.Infof(t, a...) }

func (l *zapLogger) With(args ...interface{}) Logger {
	return &zapLogger{sugar: l.sugar.With(args...)}
}

// appenderCore adapts an Appender to a zapcore.Core so it can be teed
// alongside other appenders.
type appenderCore struct {
	appender Appender
	encoder  zapcore.Encoder
	fields   []zapcore.Field
}

func (c *appenderCore) Enabled(zapcore.Level) bool { return true }

func (c *appenderCore) With(fields []zapcore.Field) zapcore.Core {
	return &appenderCore{appender: c.appender, encoder: c.encoder, fields: append(c.fields, fields...)}
}

func (c *appenderCore) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	return ce.AddCore(e, c)
}

func (c *appenderCore) Write(e zapcore.Entry, fields []zapcore.Field) error {
	return c.appender.Write(e, append(c.fields, fields...))
}

func (c *appenderCore) Sync() error { return c.appender.Sync() }
