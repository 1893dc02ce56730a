package handlers

import (
	"context"
	"sync"

	"github.com/on-the-ground/fnkit/internal/model"
)

type workerDispatcher[T any] interface {
	channelOf(msg T) chan T
	closeAll()
}

// --- single queue ---

type singleQueue[T any] struct {
	effectCh chan T
}

func (q singleQueue[T]) channelOf(_ T) chan T {
	return q.effectCh
}

func (q singleQueue[T]) closeAll() {
	close(q.effectCh)
}

func newSingleQueue[T any](
	ctx context.Context,
	bufferSize int,
	wg *sync.WaitGroup,
	handleFn func(context.Context, T),
) workerDispatcher[T] {
	effCh := make(chan T, bufferSize)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for msg := range effCh {
			handleFn(ctx, msg)
		}
	}()
	return singleQueue[T]{effectCh: effCh}
}

// --- partitioned queue ---

type partitionedQueue[T model.Partitionable] struct {
	effectChs []chan T
}

func (pq partitionedQueue[T]) channelOf(msg T) chan T {
	return pq.effectChs[PartitionIndex(msg.PartitionKey(), len(pq.effectChs))]
}

func (pq partitionedQueue[T]) closeAll() {
	for _, ch := range pq.effectChs {
		close(ch)
	}
}

func newPartitionedQueue[T model.Partitionable](
	ctx context.Context,
	numWorkers, bufferSize int,
	wg *sync.WaitGroup,
	handleFn func(context.Context, T),
) workerDispatcher[T] {
	channels := make([]chan T, numWorkers)
	for i := 0; i < numWorkers; i++ {
		ch := make(chan T, bufferSize)
		wg.Add(1)
		go func(ch chan T) {
			defer wg.Done()
			for msg := range ch {
				handleFn(ctx, msg)
			}
		}(ch)
		channels[i] = ch
	}
	return partitionedQueue[T]{effectChs: channels}
}
