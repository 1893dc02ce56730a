package counter

import (
	"context"
	"iter"
	"slices"

	"github.com/on-the-ground/fnkit/internal/handlers"
)

type indexedItem[T comparable] struct {
	item  T
	index int
	key   string
}

func (i indexedItem[T]) PartitionKey() string {
	return i.key
}

type partialCount struct {
	count      int
	firstIndex int
}

type firstSeen[T comparable] struct {
	item T
	partialCount
}

// CountPartitioned counts seq on numWorkers workers. Items are routed by
// keyFn so a given item is always counted by the same worker. The result is
// the same table Count would build, first-seen order included.
func CountPartitioned[T comparable](
	ctx context.Context,
	seq iter.Seq[T],
	numWorkers int,
	keyFn func(T) string,
) (*Table[T], error) {
	config := handlers.NewConfig(64, numWorkers)
	partials := make([]map[T]*partialCount, config.NumWorkers)
	for i := range partials {
		partials[i] = map[T]*partialCount{}
	}

	handler := handlers.NewPartitionableFireAndForgetHandler(
		ctx,
		config,
		func(_ context.Context, msg indexedItem[T]) {
			// only the worker owning this partition touches its map
			partial := partials[handlers.PartitionIndex(msg.key, config.NumWorkers)]
			if pc, ok := partial[msg.item]; ok {
				pc.count++
				return
			}
			partial[msg.item] = &partialCount{count: 1, firstIndex: msg.index}
		},
		nil,
	)

	index := 0
	for item := range seq {
		err := handler.FireAndForgetEffect(ctx, indexedItem[T]{item: item, index: index, key: keyFn(item)})
		if err != nil {
			handler.Close()
			return nil, err
		}
		index++
	}
	handler.Close()

	var merged []firstSeen[T]
	for _, partial := range partials {
		for item, pc := range partial {
			merged = append(merged, firstSeen[T]{item: item, partialCount: *pc})
		}
	}
	slices.SortFunc(merged, func(a, b firstSeen[T]) int {
		return a.firstIndex - b.firstIndex
	})

	b := newBuilder[T]()
	for _, fs := range merged {
		b.addN(fs.item, fs.count)
	}
	return b.table, nil
}
