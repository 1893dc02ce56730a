// Package wrap provides higher-order transforms that add one behavior
// around a function while keeping its call contract.
//
// Every wrapper maps a Func to a Func of the same type, so wrappers stack:
//
//	var fib wrap.Func[int, int]
//	calls := wrap.NewCallCounter("fib")
//	fib = wrap.Chain(
//	    func(ctx context.Context, n int) (int, error) {
//	        if n < 2 {
//	            return n, nil
//	        }
//	        a, _ := fib(ctx, n-1)
//	        b, _ := fib(ctx, n-2)
//	        return a + b, nil
//	    },
//	    wrap.Memoize[int, int](128),
//	    wrap.Counted[int, int](calls),
//	)
//
// Functions of several arguments take a Pair or Triple.
package wrap
