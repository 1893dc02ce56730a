package wrap

import (
	"context"
	"sync/atomic"

	"github.com/on-the-ground/fnkit/log"
)

// CallCounter counts the invocations of one wrapped function.
type CallCounter struct {
	name  string
	calls atomic.Int64
}

func NewCallCounter(name string) *CallCounter {
	return &CallCounter{name: name}
}

func (c *CallCounter) Name() string {
	return c.name
}

func (c *CallCounter) Count() int64 {
	return c.calls.Load()
}

// Counted increments counter on every call, before the call runs.
func Counted[A, R any](counter *CallCounter) Wrapper[A, R] {
	return func(fn Func[A, R]) Func[A, R] {
		return func(ctx context.Context, arg A) (R, error) {
			n := counter.calls.Add(1)
			log.Effect(ctx, log.LogDebug, "call counted", map[string]interface{}{
				"func":  counter.name,
				"count": n,
			})
			return fn(ctx, arg)
		}
	}
}
