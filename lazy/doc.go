// Package lazy provides pull-based sequence producers.
//
// Every producer implements Iterator: Next advances and reports whether a
// value is available, Value returns it, Err reports why iteration stopped
// early and Close releases whatever the producer holds. Only the current
// element is materialized.
//
// Producers are single pass. Once Next has returned false it keeps
// returning false; there is no reset.
//
//	it := lazy.Fibonacci(10)
//	defer it.Close()
//	for it.Next() {
//	    fmt.Println(it.Value())
//	}
//	if err := it.Err(); err != nil {
//	    return err
//	}
package lazy
