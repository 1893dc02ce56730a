package wrap

import (
	"context"

	"github.com/on-the-ground/fnkit/memo"
)

// Memoize returns the cached result for an argument seen before and calls
// through otherwise. Errors are not cached. The cache holds between
// maxEntries and 2*maxEntries results; see memo.Table.
//
// The argument must be comparable at runtime; anything else panics with
// memo.ErrUnhashableKey, Stringers included.
func Memoize[A, R any](maxEntries uint32) Wrapper[A, R] {
	return func(fn Func[A, R]) Func[A, R] {
		cache := memo.NewTable[R](maxEntries)
		return func(ctx context.Context, arg A) (R, error) {
			key, err := memo.ComparableKeyOf(arg)
			if err != nil {
				panic(err)
			}
			keys := []memo.Key{key}
			if res, ok := cache.Load(keys); ok {
				return res, nil
			}

			res, err := fn(ctx, arg)
			if err != nil {
				return res, err
			}
			cache.Store(keys, res)
			return res, nil
		}
	}
}
