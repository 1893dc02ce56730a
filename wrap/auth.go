package wrap

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotAuthenticated = errors.New("not authenticated")
)

// Authenticator decides whether the caller in ctx may proceed.
type Authenticator interface {
	Authenticate(ctx context.Context) error
}

type AuthenticatorFunc func(ctx context.Context) error

func (f AuthenticatorFunc) Authenticate(ctx context.Context) error {
	return f(ctx)
}

// Static always answers the same way.
func Static(authenticated bool) Authenticator {
	return AuthenticatorFunc(func(context.Context) error {
		if !authenticated {
			return ErrNotAuthenticated
		}
		return nil
	})
}

// Authorized calls the wrapped function only when auth accepts the caller.
// A rejection is returned as an error wrapping ErrPermissionDenied.
func Authorized[A, R any](auth Authenticator) Wrapper[A, R] {
	return func(fn Func[A, R]) Func[A, R] {
		return func(ctx context.Context, arg A) (R, error) {
			if err := auth.Authenticate(ctx); err != nil {
				var zero R
				if errors.Is(err, ErrPermissionDenied) {
					return zero, err
				}
				return zero, fmt.Errorf("%w: %w", ErrPermissionDenied, err)
			}
			return fn(ctx, arg)
		}
	}
}
