// Package engine implements the serialized assignment pipeline. A single
// goroutine drains the order queue, evaluates every eligible courier,
// commits the winning pair and broadcasts the assignment.
package engine

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/grafana/dskit/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/parcelops/dispatch/modules/registry"
	"github.com/parcelops/dispatch/pkg/model"
	"github.com/parcelops/dispatch/pkg/queue"
)

// requeueDelay is how long the engine waits before re-enqueueing an order
// for which no eligible courier exists.
const requeueDelay = 250 * time.Millisecond

const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)

var (
	metricAssignmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assignments_total",
		Help: "Total engine iterations by outcome.",
	}, []string{"outcome"})
	metricAssignmentLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "assignment_latency_seconds",
		Help: "Wall-clock time spent processing one order.",
	}, []string{"outcome"})
	metricCourierUtilization = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "courier_utilization",
		Help: "Per-courier current_load/capacity after each commit.",
	}, []string{"courier_id"})
)

// Engine is the queue's single consumer. Because only one goroutine runs
// the loop, commits on the same courier can never race.
type Engine struct {
	services.Service

	reg    *registry.Registry
	logger log.Logger
}

func New(reg *registry.Registry, logger log.Logger) *Engine {
	e := &Engine{
		reg:    reg,
		logger: logger,
	}
	e.Service = services.NewBasicService(nil, e.running, nil)
	return e
}

func (e *Engine) running(ctx context.Context) error {
	level.Info(e.logger).Log("msg", "assignment engine started")

	for {
		order, err := e.reg.DequeueOrder(ctx)
		if errors.Is(err, queue.ErrClosed) {
			level.Warn(e.logger).Log("msg", "assignment engine stopped: order queue closed")
			return nil
		}
		if err != nil {
			// context cancellation, shut down quietly
			return nil
		}

		start := time.Now()
		outcome := outcomeSuccess
		if err := e.process(ctx, order); err != nil {
			outcome = outcomeError
			level.Error(e.logger).Log("msg", "failed to process order", "order_id", order.ID, "err", err)
		}
		metricAssignmentLatency.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
		metricAssignmentsTotal.WithLabelValues(outcome).Inc()
	}
}

// process runs candidate selection and commit for one order. "No eligible
// courier" is not an error, the order is re-enqueued after a short delay.
func (e *Engine) process(ctx context.Context, order model.Order) error {
	var candidates []model.Courier
	e.reg.Couriers.Range(func(_ uuid.UUID, c model.Courier) bool {
		if c.Status == model.CourierAvailable && c.CurrentLoad < c.Capacity {
			candidates = append(candidates, c)
		}
		return true
	})

	if len(candidates) == 0 {
		level.Warn(e.logger).Log("msg", "no eligible couriers, re-queueing order", "order_id", order.ID)
		select {
		case <-time.After(requeueDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
		return e.reg.EnqueueOrder(ctx, order)
	}

	var (
		winner        model.Courier
		bestScore     float64
		bestBreakdown model.ScoreBreakdown
		found         bool
	)
	for _, c := range candidates {
		score, breakdown := Score(c, order)
		if math.IsNaN(score) {
			// a NaN candidate never wins
			continue
		}
		if !found || score > bestScore {
			winner, bestScore, bestBreakdown, found = c, score, breakdown, true
		}
	}
	if !found {
		return errors.New("failed to score couriers")
	}

	// Commit. The candidate snapshot may be stale by now, that is accepted:
	// the load add saturates and the Busy transition is re-evaluated here,
	// and only this loop ever increments current_load.
	courierID := winner.ID
	order.Status = model.OrderAssigned
	order.AssignedCourier = &courierID
	e.reg.Orders.Put(order.ID, order)

	e.reg.Couriers.Update(winner.ID, func(c *model.Courier) {
		if c.CurrentLoad < math.MaxUint8 {
			c.CurrentLoad++
		}
		if c.CurrentLoad >= c.Capacity {
			c.Status = model.CourierBusy
		}
		c.UpdatedAt = time.Now().UTC()
		metricCourierUtilization.WithLabelValues(c.ID.String()).
			Set(float64(c.CurrentLoad) / float64(c.Capacity))
	})

	assignment := model.Assignment{
		ID:             uuid.New(),
		OrderID:        order.ID,
		CourierID:      winner.ID,
		Score:          bestScore,
		ScoreBreakdown: bestBreakdown,
		AssignedAt:     time.Now().UTC(),
	}
	e.reg.Assignments.Put(assignment.ID, assignment)

	// no subscribers is fine, publish never fails or blocks
	e.reg.PublishAssignment(assignment)

	level.Info(e.logger).Log("msg", "order assigned",
		"order_id", order.ID,
		"courier_id", winner.ID,
		"score", bestScore,
	)

	return nil
}
