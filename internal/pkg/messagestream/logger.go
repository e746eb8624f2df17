package messagestream

import (
	"github.com/ThreeDotsLabs/watermill"
	"go.uber.org/zap"
)

type zapAdapter struct {
	log *zap.Logger
}

// NewLogger adapts zap to the watermill logger interface.
func NewLogger(log *zap.Logger) watermill.LoggerAdapter {
	return &zapAdapter{log: log}
}

func (z *zapAdapter) Error(msg string, err error, fields watermill.LogFields) {
	z.log.Error(msg, append(toZap(fields), zap.Error(err))...)
}

func (z *zapAdapter) Info(msg string, fields watermill.LogFields) {
	z.log.Info(msg, toZap(fields)...)
}

func (z *zapAdapter) Debug(msg string, fields watermill.LogFields) {
	z.log.Debug(msg, toZap(fields)...)
}

func (z *zapAdapter) Trace(msg string, fields watermill.LogFields) {
	z.log.Debug(msg, toZap(fields)...)
}

func (z *zapAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &zapAdapter{log: z.log.With(toZap(fields)...)}
}

func toZap(fields watermill.LogFields) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}
