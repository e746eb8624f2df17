package log

import (
	"context"
	"fmt"
	"strings"

	"railway-reservation/config"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debug(ctx context.Context, msg string, fields ...any)
	Info(ctx context.Context, msg string, fields ...any)
	Warn(ctx context.Context, msg string, fields ...any)
	Error(ctx context.Context, msg string, fields ...any)
}

type logger struct {
	zap *otelzap.Logger
}

// SetupLogger builds the zap logger described by cfg. Output accepts the zap
// sink names (stderr, stdout) or a file path.
func SetupLogger(cfg *config.LogConfig) (*otelzap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.OutputPaths = []string{cfg.Output}
	zapCfg.ErrorOutputPaths = []string{cfg.Output}

	z, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return otelzap.New(z, otelzap.WithMinLevel(level)), nil
}

// Setup returns a logger that discards everything, for tests.
func Setup() *otelzap.Logger {
	return otelzap.New(zap.NewNop())
}

func New(l *otelzap.Logger) Logger {
	return &logger{zap: l}
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...any) {
	l.zap.Ctx(ctx).Debug(msg, toFields(fields)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...any) {
	l.zap.Ctx(ctx).Info(msg, toFields(fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...any) {
	l.zap.Ctx(ctx).Warn(msg, toFields(fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...any) {
	l.zap.Ctx(ctx).Error(msg, toFields(fields)...)
}

func toFields(args []any) []zap.Field {
	fields := make([]zap.Field, 0, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case zap.Field:
			fields = append(fields, v)
		case error:
			fields = append(fields, zap.Error(v))
		default:
			fields = append(fields, zap.Any(fmt.Sprintf("arg%d", i), v))
		}
	}
	return fields
}
