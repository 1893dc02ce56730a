package lazy

import (
	"iter"

	"go.uber.org/multierr"
)

// Seq exposes it as a range-over-func sequence. The iterator is closed when
// the loop ends, including on break. Check it.Err() after the loop.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		defer it.Close()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// FromSeq turns a push sequence into a pull iterator. Close stops the
// underlying sequence if it has not finished.
func FromSeq[T any](seq iter.Seq[T]) Iterator[T] {
	next, stop := iter.Pull(seq)
	return &pullIterator[T]{next: next, stop: stop}
}

type pullIterator[T any] struct {
	next  func() (T, bool)
	stop  func()
	value T
	done  bool
}

func (p *pullIterator[T]) Next() bool {
	if p.done {
		return false
	}
	v, ok := p.next()
	if !ok {
		p.done = true
		p.stop()
		return false
	}
	p.value = v
	return true
}

func (p *pullIterator[T]) Value() T   { return p.value }
func (p *pullIterator[T]) Err() error { return nil }

func (p *pullIterator[T]) Close() error {
	p.done = true
	p.stop()
	return nil
}

// Slice iterates over values without copying them.
func Slice[T any](values []T) Iterator[T] {
	return &sliceIterator[T]{values: values, index: -1}
}

type sliceIterator[T any] struct {
	values []T
	index  int
}

func (s *sliceIterator[T]) Next() bool {
	if s.index+1 >= len(s.values) {
		s.index = len(s.values)
		return false
	}
	s.index++
	return true
}

func (s *sliceIterator[T]) Value() T {
	var zero T
	if s.index < 0 || s.index >= len(s.values) {
		return zero
	}
	return s.values[s.index]
}

func (s *sliceIterator[T]) Err() error   { return nil }
func (s *sliceIterator[T]) Close() error { s.index = len(s.values); return nil }

// Filter yields the values of it for which predicate holds.
func Filter[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	return &filterIterator[T]{Iterator: it, predicate: predicate}
}

type filterIterator[T any] struct {
	Iterator[T]
	predicate func(T) bool
}

func (f *filterIterator[T]) Next() bool {
	for f.Iterator.Next() {
		if f.predicate(f.Iterator.Value()) {
			return true
		}
	}
	return false
}

// Map yields fn applied to each value of it.
func Map[T, R any](it Iterator[T], fn func(T) R) Iterator[R] {
	return &mapIterator[T, R]{source: it, fn: fn}
}

type mapIterator[T, R any] struct {
	source Iterator[T]
	fn     func(T) R
	value  R
}

func (m *mapIterator[T, R]) Next() bool {
	if !m.source.Next() {
		return false
	}
	m.value = m.fn(m.source.Value())
	return true
}

func (m *mapIterator[T, R]) Value() R     { return m.value }
func (m *mapIterator[T, R]) Err() error   { return m.source.Err() }
func (m *mapIterator[T, R]) Close() error { return m.source.Close() }

// Concat yields every value of its, one iterator after another. It stops at
// the first iterator that fails. Close closes all of them.
func Concat[T any](its ...Iterator[T]) Iterator[T] {
	return &concatIterator[T]{its: its}
}

type concatIterator[T any] struct {
	its     []Iterator[T]
	current int
	err     error
}

func (c *concatIterator[T]) Next() bool {
	for c.current < len(c.its) {
		it := c.its[c.current]
		if it.Next() {
			return true
		}
		if err := it.Err(); err != nil {
			c.err = err
			c.current = len(c.its)
			return false
		}
		c.current++
	}
	return false
}

func (c *concatIterator[T]) Value() T {
	var zero T
	if c.current >= len(c.its) {
		return zero
	}
	return c.its[c.current].Value()
}

func (c *concatIterator[T]) Err() error { return c.err }

func (c *concatIterator[T]) Close() error {
	c.current = len(c.its)
	var err error
	for _, it := range c.its {
		err = multierr.Append(err, it.Close())
	}
	return err
}

// Collect drains it into a slice and closes it.
func Collect[T any](it Iterator[T]) (values []T, err error) {
	defer func() {
		err = multierr.Append(err, it.Close())
	}()
	for it.Next() {
		values = append(values, it.Value())
	}
	return values, it.Err()
}
