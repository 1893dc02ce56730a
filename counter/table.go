package counter

import (
	"context"
	"iter"
	"maps"
	"slices"

	"github.com/on-the-ground/fnkit/lazy"
)

// Entry is an item together with its count.
type Entry[T comparable] struct {
	Item  T
	Count int
}

// Table is an immutable frequency table.
type Table[T comparable] struct {
	counts map[T]int
	order  []T
	total  int
}

type builder[T comparable] struct {
	table *Table[T]
}

func newBuilder[T comparable]() builder[T] {
	return builder[T]{table: &Table[T]{counts: map[T]int{}}}
}

func (b builder[T]) addN(item T, n int) {
	if _, seen := b.table.counts[item]; !seen {
		b.table.order = append(b.table.order, item)
	}
	b.table.counts[item] += n
	b.table.total += n
}

// Count builds a table from a finite sequence.
func Count[T comparable](seq iter.Seq[T]) *Table[T] {
	b := newBuilder[T]()
	for item := range seq {
		b.addN(item, 1)
	}
	return b.table
}

// CountSlice builds a table from items.
func CountSlice[S ~[]T, T comparable](items S) *Table[T] {
	return Count(slices.Values(items))
}

// CountIterator drains it into a table. It always closes it and stops
// early when ctx is done.
func CountIterator[T comparable](ctx context.Context, it lazy.Iterator[T]) (table *Table[T], err error) {
	defer func() {
		if closeErr := it.Close(); err == nil {
			err = closeErr
		}
	}()

	b := newBuilder[T]()
	for it.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b.addN(it.Value(), 1)
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return b.table, nil
}

// Merge returns a new table holding the counts of a and b. Items keep a's
// first-seen order, followed by the items only b has seen.
func Merge[T comparable](a, b *Table[T]) *Table[T] {
	m := newBuilder[T]()
	for _, t := range []*Table[T]{a, b} {
		for _, item := range t.order {
			m.addN(item, t.counts[item])
		}
	}
	return m.table
}

// Count returns how many times item was seen.
func (t *Table[T]) Count(item T) int {
	return t.counts[item]
}

// Len returns the number of distinct items.
func (t *Table[T]) Len() int {
	return len(t.order)
}

// Total returns the number of items counted.
func (t *Table[T]) Total() int {
	return t.total
}

// Items returns the distinct items in first-seen order.
func (t *Table[T]) Items() []T {
	return slices.Clone(t.order)
}

// Map returns a copy of the counts.
func (t *Table[T]) Map() map[T]int {
	return maps.Clone(t.counts)
}

// TopK returns the k most frequent items, descending by count. Items with
// equal counts keep their first-seen order.
func (t *Table[T]) TopK(k int) []Entry[T] {
	if k <= 0 {
		return []Entry[T]{}
	}
	entries := make([]Entry[T], len(t.order))
	for i, item := range t.order {
		entries[i] = Entry[T]{Item: item, Count: t.counts[item]}
	}
	slices.SortStableFunc(entries, func(a, b Entry[T]) int {
		return b.Count - a.Count
	})
	return entries[:min(k, len(entries))]
}

// MostCommon returns every item, descending by count.
func (t *Table[T]) MostCommon() []Entry[T] {
	return t.TopK(t.Len())
}
