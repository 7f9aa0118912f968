// Package registry owns all entity records and the primitives connecting
// ingress to the assignment engine: the bounded order queue and the
// assignment event broadcaster.
package registry

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/parcelops/dispatch/pkg/broadcast"
	"github.com/parcelops/dispatch/pkg/kv"
	"github.com/parcelops/dispatch/pkg/model"
	"github.com/parcelops/dispatch/pkg/queue"
)

var metricOrdersInQueue = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "orders_in_queue",
	Help: "Current number of orders waiting for assignment.",
})

type Config struct {
	OrderQueueSize  int
	EventBufferSize int
}

// Registry is the single owner of courier, order and assignment records.
// Ingress and the engine both mutate through its maps, each write is either
// a whole-record replacement or a scoped per-key update.
type Registry struct {
	Couriers    *kv.Store[model.Courier]
	Orders      *kv.Store[model.Order]
	Assignments *kv.Store[model.Assignment]

	orderQueue *queue.Queue[model.Order]
	events     *broadcast.Broadcaster[model.Assignment]
}

func New(cfg Config) *Registry {
	return &Registry{
		Couriers:    kv.New[model.Courier](),
		Orders:      kv.New[model.Order](),
		Assignments: kv.New[model.Assignment](),
		orderQueue:  queue.New[model.Order](cfg.OrderQueueSize, metricOrdersInQueue),
		events:      broadcast.New[model.Assignment](cfg.EventBufferSize),
	}
}

// EnqueueOrder pushes an order onto the bounded queue, blocking under
// back-pressure. A failure means the engine is gone and is unrecoverable for
// the caller.
func (r *Registry) EnqueueOrder(ctx context.Context, order model.Order) error {
	if err := r.orderQueue.Push(ctx, order); err != nil {
		return fmt.Errorf("order queue send failed: %w", err)
	}
	return nil
}

// DequeueOrder receives the next order in FIFO order. Only the assignment
// engine may call this, it is the queue's single consumer.
func (r *Registry) DequeueOrder(ctx context.Context) (model.Order, error) {
	return r.orderQueue.Pop(ctx)
}

// QueueDepth reports the number of orders currently buffered.
func (r *Registry) QueueDepth() int {
	return r.orderQueue.Len()
}

// Subscribe returns a fresh event receiver starting at the current write
// position.
func (r *Registry) Subscribe() *broadcast.Subscription[model.Assignment] {
	return r.events.Subscribe()
}

// PublishAssignment fans the assignment out to all subscribers without ever
// blocking the caller.
func (r *Registry) PublishAssignment(a model.Assignment) {
	r.events.Publish(a)
}

// Close shuts the order queue down, which terminates the engine loop.
func (r *Registry) Close() {
	r.orderQueue.Close()
}
