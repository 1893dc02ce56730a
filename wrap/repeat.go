package wrap

import "context"

// Repeat invokes the wrapped function n times per call and returns the
// result of the last invocation. It stops at the first error.
func Repeat[A, R any](n int) Wrapper[A, R] {
	if n < 1 {
		panic("Repeat: n should be greater than 0")
	}
	return func(fn Func[A, R]) Func[A, R] {
		return func(ctx context.Context, arg A) (res R, err error) {
			for i := 0; i < n; i++ {
				if res, err = fn(ctx, arg); err != nil {
					return res, err
				}
			}
			return res, nil
		}
	}
}
