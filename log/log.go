package log

import (
	"context"
	"maps"
	"slices"

	"github.com/on-the-ground/fnkit/internal/handlers"
	"github.com/on-the-ground/fnkit/internal/model"
	"go.uber.org/zap"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"
)

// LogPayload is the payload structure for logging effect.
// It contains the log level, message string, and optional structured fields.
type LogPayload struct {
	Level   LogLevel
	Message string
	Fields  map[string]interface{}
}

// WithZapEffectHandler registers a fire-and-forget log effect handler using zap.Logger.
// Log entries are written by a single background worker in the order they were emitted.
// The returned teardown drains pending entries, syncs the logger and returns the parent context.
func WithZapEffectHandler(
	ctx context.Context,
	bufferSize int,
	logger *zap.Logger,
) (context.Context, func() context.Context) {
	handler := handlers.NewFireAndForgetHandler(
		ctx,
		bufferSize,
		func(_ context.Context, payload LogPayload) {
			write(logger, payload)
		},
		func() {
			// stdout/stderr sinks report EINVAL on sync on some platforms
			_ = logger.Sync()
		},
	)
	logger.Debug("created log effect handler", zap.String("effectId", handler.EffectId))

	ctxWith := context.WithValue(ctx, model.EffectLog, handler)
	return ctxWith, func() context.Context {
		handler.Close()
		return ctx
	}
}

// Effect performs a fire-and-forget log effect using the handler in the context.
// Without a handler, or after its teardown, the entry is dropped.
func Effect(ctx context.Context, level LogLevel, msg string, fields map[string]interface{}) {
	handler, ok := ctx.Value(model.EffectLog).(*handlers.FireAndForgetHandler[LogPayload])
	if !ok {
		return
	}
	_ = handler.FireAndForgetEffect(ctx, LogPayload{
		Level:   level,
		Message: msg,
		Fields:  fields,
	})
}

func write(logger *zap.Logger, payload LogPayload) {
	fields := make([]zap.Field, 0, len(payload.Fields))
	for _, k := range slices.Sorted(maps.Keys(payload.Fields)) {
		fields = append(fields, zap.Any(k, payload.Fields[k]))
	}

	switch payload.Level {
	case LogInfo:
		logger.Info(payload.Message, fields...)
	case LogWarn:
		logger.Warn(payload.Message, fields...)
	case LogError:
		logger.Error(payload.Message, fields...)
	case LogDebug:
		logger.Debug(payload.Message, fields...)
	default:
		logger.Info(payload.Message, fields...)
	}
}
