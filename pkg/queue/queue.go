// Package queue provides the bounded FIFO handoff between ingress producers
// and the single assignment engine consumer.
package queue

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

// ErrClosed is returned by Push and Pop once the queue has been closed.
var ErrClosed = errors.New("order queue closed")

// Queue is a fixed-capacity FIFO. Push blocks when the queue is full, which
// is how back-pressure propagates to ingress handlers. Exactly one consumer
// is expected to call Pop.
//
// Every successful Push increments the depth gauge and every successful Pop
// decrements it, so the gauge always reads the current in-queue depth.
type Queue[T any] struct {
	ch     chan T
	stop   chan struct{}
	closed *atomic.Bool
	depth  prometheus.Gauge
}

func New[T any](size int, depth prometheus.Gauge) *Queue[T] {
	return &Queue[T]{
		ch:     make(chan T, size),
		stop:   make(chan struct{}),
		closed: atomic.NewBool(false),
		depth:  depth,
	}
}

// Push enqueues item, blocking while the queue is full. It fails only when
// the queue is closed or ctx ends.
func (q *Queue[T]) Push(ctx context.Context, item T) error {
	if q.closed.Load() {
		return ErrClosed
	}

	select {
	case q.ch <- item:
		q.depth.Inc()
		return nil
	case <-q.stop:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Pop blocks until an item is available. It returns ErrClosed after Close,
// items still buffered at that point are dropped.
func (q *Queue[T]) Pop(ctx context.Context) (T, error) {
	var zero T

	select {
	case item := <-q.ch:
		q.depth.Dec()
		return item, nil
	case <-q.stop:
		return zero, ErrClosed
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Len returns the number of currently buffered items.
func (q *Queue[T]) Len() int {
	return len(q.ch)
}

// Close unblocks all producers and the consumer. Safe to call multiple times.
func (q *Queue[T]) Close() {
	if q.closed.CompareAndSwap(false, true) {
		close(q.stop)
	}
}
