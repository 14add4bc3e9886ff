package queue

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

var (
	ErrClosed = errors.New("queue is closed")
)

type Option func(*options)

type options struct {
	logger zerolog.Logger
}

func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger.With().Str("component", "queue").Logger()
	}
}

// Queue is an unbounded FIFO with blocking receive. Every sent item is
// delivered to exactly one receiver.
type Queue[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []T
	closed bool
	logger zerolog.Logger
}

func New[T any](opts ...Option) *Queue[T] {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	q := &Queue[T]{
		logger: o.logger,
	}
	q.cond = sync.NewCond(&q.mu)

	return q
}

// Send appends entity to the tail and wakes one waiting receiver. It never
// blocks. Items sent after Close are dropped.
func (q *Queue[T]) Send(entity T) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.logger.Debug().Interface("message", entity).Msg("queue closed, message dropped")
		return
	}
	q.items = append(q.items, entity)
	q.mu.Unlock()

	q.logger.Debug().Interface("message", entity).Msg("message has been sent to the queue")
	q.cond.Signal()
}

// Receive removes and returns the head item, waiting until one is available.
// It returns the zero value once the queue is closed and drained.
func (q *Queue[T]) Receive() T {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 && !q.closed {
		q.cond.Wait()
	}

	if len(q.items) == 0 {
		var zero T
		return zero
	}

	return q.pop()
}

// ReceiveContext is Receive with cancellation. It returns ctx.Err() when ctx
// is done before an item arrives and ErrClosed when the queue is closed and
// drained.
func (q *Queue[T]) ReceiveContext(ctx context.Context) (T, error) {
	var zero T

	stop := context.AfterFunc(ctx, func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		q.cond.Broadcast()
	})
	defer stop()

	q.mu.Lock()
	defer q.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	// a woken receiver always takes an available item, so a Signal is never lost
	for len(q.items) == 0 && !q.closed {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		q.cond.Wait()
	}

	if len(q.items) == 0 {
		return zero, ErrClosed
	}

	return q.pop(), nil
}

func (q *Queue[T]) TryReceive() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		var zero T
		return zero, false
	}

	return q.pop(), true
}

func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}

// Close wakes every waiting receiver. Items already queued can still be
// received. Close is idempotent.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.cond.Broadcast()
}

// pop must be called with mu held and a non-empty queue.
func (q *Queue[T]) pop() T {
	var zero T

	item := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]

	return item
}
