package lazy

import (
	"errors"
	"io"
)

// ErrEndOfSequence is returned by Pull once an iterator is exhausted.
var ErrEndOfSequence = errors.New("end of sequence")

// Iterator is a single-pass, pull-based sequence.
type Iterator[T any] interface {
	// Close releases any resource held by the iterator. It is safe to call
	// more than once and after exhaustion.
	io.Closer
	// Next advances to the next value and reports whether there is one.
	Next() bool
	// Value returns the value Next advanced to.
	Value() T
	// Err returns the error that stopped the iteration, if any.
	Err() error
}

// Pull advances it by one step. When it is exhausted Pull returns
// ErrEndOfSequence, or the iterator's own error if it failed.
func Pull[T any](it Iterator[T]) (T, error) {
	if it.Next() {
		return it.Value(), nil
	}
	var zero T
	if err := it.Err(); err != nil {
		return zero, err
	}
	return zero, ErrEndOfSequence
}
