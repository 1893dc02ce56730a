package wrap

import (
	"context"
	"time"

	"github.com/on-the-ground/fnkit/log"
	"github.com/rickb777/date/v2/timespan"
)

// Measurement is the wall-clock span of one call.
type Measurement struct {
	Name string
	Span timespan.TimeSpan
	Err  error
}

func (m Measurement) Elapsed() time.Duration {
	return m.Span.Duration()
}

// Observer receives a Measurement after every timed call.
type Observer func(context.Context, Measurement)

// LogMeasurement emits m through the log effect in ctx.
func LogMeasurement(ctx context.Context, m Measurement) {
	fields := map[string]interface{}{
		"func":    m.Name,
		"start":   m.Span.Start(),
		"elapsed": m.Elapsed(),
	}
	if m.Err != nil {
		fields["error"] = m.Err
	}
	log.Effect(ctx, log.LogInfo, "function timed", fields)
}

// Timed measures the wall-clock time of each call and hands it to the
// observers, or to LogMeasurement when none is given.
func Timed[A, R any](name string, observers ...Observer) Wrapper[A, R] {
	if len(observers) == 0 {
		observers = []Observer{LogMeasurement}
	}
	return func(fn Func[A, R]) Func[A, R] {
		return func(ctx context.Context, arg A) (R, error) {
			start := time.Now()
			res, err := fn(ctx, arg)
			m := Measurement{
				Name: name,
				Span: timespan.BetweenTimes(start, time.Now()),
				Err:  err,
			}
			for _, observe := range observers {
				observe(ctx, m)
			}
			return res, err
		}
	}
}
