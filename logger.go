package prisma

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a structured, leveled logger
type Logger interface {
	Error(ctx context.Context, msg string, err error, tags map[string]any)
	Warn(ctx context.Context, msg string, tags map[string]any)
	Info(ctx context.Context, msg string, tags map[string]any)
	Debug(ctx context.Context, msg string, tags map[string]any)
}

type defaultLogger struct {
	logger *zap.Logger
}

// NewLogger returns a structured json logger with the given level and default fields
func NewLogger(level string, defaultFields map[string]any) (Logger, error) {
	cfg := zap.NewProductionConfig()
	var opts = []zap.Option{
		zap.WithCaller(true),
		zap.AddCallerSkip(1),
	}
	for k, v := range defaultFields {
		opts = append(opts, zap.Fields(zap.Any(k, v)))
	}
	cfg.Level = zap.NewAtomicLevelAt(getLevel(level))
	logger, err := cfg.Build(opts...)
	if err != nil {
		return nil, err
	}
	return &defaultLogger{logger: logger}, nil
}

func (d defaultLogger) fields(ctx context.Context, tags map[string]any) []zap.Field {
	var fields []zap.Field
	if meta, ok := GetMetadata(ctx); ok {
		for k, v := range meta.Map() {
			fields = append(fields, zap.Any(k, v))
		}
	}
	for k, v := range tags {
		fields = append(fields, zap.Any(k, v))
	}
	return fields
}

func (d defaultLogger) Error(ctx context.Context, msg string, err error, tags map[string]any) {
	d.logger.Error(msg, append(d.fields(ctx, tags), zap.Error(err))...)
}

func (d defaultLogger) Warn(ctx context.Context, msg string, tags map[string]any) {
	d.logger.Warn(msg, d.fields(ctx, tags)...)
}

func (d defaultLogger) Info(ctx context.Context, msg string, tags map[string]any) {
	d.logger.Info(msg, d.fields(ctx, tags)...)
}

func (d defaultLogger) Debug(ctx context.Context, msg string, tags map[string]any) {
	d.logger.Debug(msg, d.fields(ctx, tags)...)
}

func getLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "error":
		return zap.ErrorLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "debug":
		return zap.DebugLevel
	default:
		return zap.InfoLevel
	}
}
