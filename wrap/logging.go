package wrap

import (
	"context"

	"github.com/google/uuid"
	"github.com/on-the-ground/fnkit/log"
)

// Logged emits one entry before each call with its argument and one after
// with its result or error. Both entries carry the same call_id.
func Logged[A, R any](name string) Wrapper[A, R] {
	return func(fn Func[A, R]) Func[A, R] {
		return func(ctx context.Context, arg A) (R, error) {
			callID := uuid.NewString()
			log.Effect(ctx, log.LogInfo, "calling", map[string]interface{}{
				"call_id": callID,
				"func":    name,
				"args":    arg,
			})

			res, err := fn(ctx, arg)
			if err != nil {
				log.Effect(ctx, log.LogError, "failed", map[string]interface{}{
					"call_id": callID,
					"func":    name,
					"error":   err,
				})
				return res, err
			}

			log.Effect(ctx, log.LogInfo, "returned", map[string]interface{}{
				"call_id": callID,
				"func":    name,
				"result":  res,
			})
			return res, nil
		}
	}
}
