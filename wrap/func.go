package wrap

import "context"

// Func is the call contract every wrapper preserves.
type Func[A, R any] func(ctx context.Context, arg A) (R, error)

// Wrapper adds a behavior around a Func.
type Wrapper[A, R any] func(Func[A, R]) Func[A, R]

// Chain wraps fn with wrappers. The first wrapper is the outermost one and
// sees every call first.
func Chain[A, R any](fn Func[A, R], wrappers ...Wrapper[A, R]) Func[A, R] {
	for i := len(wrappers) - 1; i >= 0; i-- {
		fn = wrappers[i](fn)
	}
	return fn
}

// Lift adapts a plain function that cannot fail.
func Lift[A, R any](fn func(A) R) Func[A, R] {
	return func(_ context.Context, arg A) (R, error) {
		return fn(arg), nil
	}
}

// LiftErr adapts a plain function returning an error.
func LiftErr[A, R any](fn func(A) (R, error)) Func[A, R] {
	return func(_ context.Context, arg A) (R, error) {
		return fn(arg)
	}
}

// Pair is the argument of a two-argument function.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf packs two arguments.
func PairOf[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Triple is the argument of a three-argument function.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// TripleOf packs three arguments.
func TripleOf[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}
