// Package broadcast implements a ring-buffer fan-out of assignment events.
// Publishers never block. A subscriber that falls more than the buffer size
// behind loses the oldest events and is told how many were dropped.
package broadcast

import (
	"context"
	"fmt"
	"sync"
)

// ErrLagged is returned by Recv when a subscriber fell behind the ring
// buffer. The subscription stays usable, the cursor is moved up to the
// oldest retained event.
type ErrLagged struct {
	Count uint64
}

func (e ErrLagged) Error() string {
	return fmt.Sprintf("subscriber lagged by %d events", e.Count)
}

// Broadcaster delivers every published value to every subscriber in publish
// order. The buffer size is fixed at construction.
type Broadcaster[T any] struct {
	mtx  sync.Mutex
	buf  []T
	seq  uint64        // next write position
	wake chan struct{} // closed and replaced on every publish
}

func New[T any](size int) *Broadcaster[T] {
	return &Broadcaster[T]{
		buf:  make([]T, size),
		wake: make(chan struct{}),
	}
}

// Publish appends v to the ring. It never blocks, regardless of subscriber
// progress.
func (b *Broadcaster[T]) Publish(v T) {
	b.mtx.Lock()
	b.buf[b.seq%uint64(len(b.buf))] = v
	b.seq++
	close(b.wake)
	b.wake = make(chan struct{})
	b.mtx.Unlock()
}

// Subscribe returns a subscription whose cursor starts at the current write
// position, so previously published events are not delivered.
func (b *Broadcaster[T]) Subscribe() *Subscription[T] {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	return &Subscription[T]{b: b, cursor: b.seq}
}

// Subscription is an independent receiver. Not safe for concurrent use by
// multiple goroutines.
type Subscription[T any] struct {
	b      *Broadcaster[T]
	cursor uint64
}

// Recv blocks until the next event is available or ctx ends. When the
// subscriber has lagged beyond the buffer it returns ErrLagged and skips the
// cursor forward to the oldest retained event.
func (s *Subscription[T]) Recv(ctx context.Context) (T, error) {
	var zero T

	for {
		s.b.mtx.Lock()

		if behind := s.b.seq - s.cursor; behind > uint64(len(s.b.buf)) {
			dropped := behind - uint64(len(s.b.buf))
			s.cursor = s.b.seq - uint64(len(s.b.buf))
			s.b.mtx.Unlock()
			return zero, ErrLagged{Count: dropped}
		}

		if s.cursor < s.b.seq {
			v := s.b.buf[s.cursor%uint64(len(s.b.buf))]
			s.cursor++
			s.b.mtx.Unlock()
			return v, nil
		}

		wake := s.b.wake
		s.b.mtx.Unlock()

		select {
		case <-wake:
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}
