package log

import (
	"context"

	"go.uber.org/zap"
)

// WithDevelopmentEffectHandler installs zap's development logger:
// console encoding at debug level on stderr.
func WithDevelopmentEffectHandler(
	ctx context.Context,
) (context.Context, func() context.Context, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return ctx, func() context.Context { return ctx }, err
	}
	ctx, end := WithZapEffectHandler(ctx, 1, logger)
	return ctx, end, nil
}
