package handlers

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/on-the-ground/fnkit/internal/model"
)

var ErrClosedHandler = errors.New("effect handler is closed")

// FireAndForgetHandler delivers payloads to background workers without
// waiting for them to be handled.
//
// Close stops accepting payloads, drains everything already queued and
// joins the workers before running the teardown.
type FireAndForgetHandler[T any] struct {
	EffectId string

	dispatcher workerDispatcher[T]
	wg         *sync.WaitGroup
	teardown   func()

	mu     sync.RWMutex
	closed bool
}

// NewFireAndForgetHandler starts a single worker that handles payloads in
// the order they were sent.
func NewFireAndForgetHandler[T any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, T),
	teardown func(),
) *FireAndForgetHandler[T] {
	wg := &sync.WaitGroup{}
	return &FireAndForgetHandler[T]{
		EffectId:   uuid.New().String(),
		dispatcher: newSingleQueue(ctx, NewConfig(bufferSize, 1).BufferSize, wg, handleFn),
		wg:         wg,
		teardown:   normalizeTeardown(teardown),
	}
}

// NewPartitionableFireAndForgetHandler starts config.NumWorkers workers.
// Payloads sharing a PartitionKey are always handled by the same worker,
// in the order they were sent.
func NewPartitionableFireAndForgetHandler[T model.Partitionable](
	ctx context.Context,
	config Config,
	handleFn func(context.Context, T),
	teardown func(),
) *FireAndForgetHandler[T] {
	config = NewConfig(config.BufferSize, config.NumWorkers)
	wg := &sync.WaitGroup{}
	return &FireAndForgetHandler[T]{
		EffectId:   uuid.New().String(),
		dispatcher: newPartitionedQueue(ctx, config.NumWorkers, config.BufferSize, wg, handleFn),
		wg:         wg,
		teardown:   normalizeTeardown(teardown),
	}
}

// FireAndForgetEffect queues payload. It blocks while the target queue is
// full and gives up when ctx is done.
func (h *FireAndForgetHandler[T]) FireAndForgetEffect(ctx context.Context, payload T) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return ErrClosedHandler
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case h.dispatcher.channelOf(payload) <- payload:
		return nil
	}
}

// Close is idempotent.
func (h *FireAndForgetHandler[T]) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	h.dispatcher.closeAll()
	h.mu.Unlock()

	h.wg.Wait()
	h.teardown()
}

func normalizeTeardown(teardown func()) func() {
	if teardown == nil {
		return func() {}
	}
	return teardown
}
