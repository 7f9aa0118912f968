package engine

import (
	"context"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/google/uuid"
	"github.com/grafana/dskit/services"
	"github.com/stretchr/testify/require"

	"github.com/parcelops/dispatch/modules/registry"
	"github.com/parcelops/dispatch/pkg/model"
)

func startTestEngine(t *testing.T) *registry.Registry {
	reg := registry.New(registry.Config{OrderQueueSize: 64, EventBufferSize: 64})
	eng := New(reg, log.NewNopLogger())

	require.NoError(t, services.StartAndAwaitRunning(context.Background(), eng))
	t.Cleanup(func() {
		reg.Close()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, services.StopAndAwaitTerminated(ctx, eng))
	})

	return reg
}

func addCourier(reg *registry.Registry, lat, lng float64, capacity uint8, rating float64) model.Courier {
	c := model.Courier{
		ID:        uuid.New(),
		Name:      "courier",
		Location:  model.GeoPoint{Lat: lat, Lng: lng},
		Capacity:  capacity,
		Status:    model.CourierAvailable,
		Rating:    rating,
		UpdatedAt: time.Now().UTC(),
	}
	reg.Couriers.Put(c.ID, c)
	return c
}

func submitOrder(t *testing.T, reg *registry.Registry, priority model.Priority) model.Order {
	o := model.Order{
		ID:        uuid.New(),
		Pickup:    model.GeoPoint{Lat: 52.51, Lng: 13.39},
		Dropoff:   model.GeoPoint{Lat: 52.54, Lng: 13.42},
		Priority:  priority,
		Status:    model.OrderPending,
		CreatedAt: time.Now().UTC(),
	}
	reg.Orders.Put(o.ID, o)
	require.NoError(t, reg.EnqueueOrder(context.Background(), o))
	return o
}

func TestFullFlowAssignsOrderToBestCourier(t *testing.T) {
	reg := startTestEngine(t)
	sub := reg.Subscribe()

	courier := addCourier(reg, 52.52, 13.405, 5, 4.8)
	order := submitOrder(t, reg, model.PriorityUrgent)

	require.Eventually(t, func() bool {
		return reg.Assignments.Len() == 1
	}, 2*time.Second, 10*time.Millisecond)

	var assignment model.Assignment
	reg.Assignments.Range(func(_ uuid.UUID, a model.Assignment) bool {
		assignment = a
		return false
	})
	require.Equal(t, order.ID, assignment.OrderID)
	require.Equal(t, courier.ID, assignment.CourierID)
	require.Greater(t, assignment.Score, 0.0)
	require.Greater(t, assignment.ScoreBreakdown.DistanceScore, 0.0)
	require.Greater(t, assignment.ScoreBreakdown.LoadScore, 0.0)
	require.Greater(t, assignment.ScoreBreakdown.RatingScore, 0.0)
	require.Greater(t, assignment.ScoreBreakdown.PriorityScore, 0.0)

	updatedOrder, ok := reg.Orders.Get(order.ID)
	require.True(t, ok)
	require.Equal(t, model.OrderAssigned, updatedOrder.Status)
	require.NotNil(t, updatedOrder.AssignedCourier)
	require.Equal(t, courier.ID, *updatedOrder.AssignedCourier)

	updatedCourier, ok := reg.Couriers.Get(courier.ID)
	require.True(t, ok)
	require.Equal(t, uint8(1), updatedCourier.CurrentLoad)
	require.Equal(t, model.CourierAvailable, updatedCourier.Status)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	event, err := sub.Recv(ctx)
	require.NoError(t, err)
	require.Equal(t, assignment.ID, event.ID)
}

func TestEngineSelectsHighestScoringCourier(t *testing.T) {
	reg := startTestEngine(t)

	far := addCourier(reg, 53.7, 10.2, 5, 4.8)
	near := addCourier(reg, 52.51, 13.39, 5, 4.8)
	_ = far

	submitOrder(t, reg, model.PriorityNormal)

	require.Eventually(t, func() bool {
		return reg.Assignments.Len() == 1
	}, 2*time.Second, 10*time.Millisecond)

	reg.Assignments.Range(func(_ uuid.UUID, a model.Assignment) bool {
		require.Equal(t, near.ID, a.CourierID)
		return false
	})
}

func TestNoCandidateOrderIsRequeuedUntilCourierAppears(t *testing.T) {
	reg := startTestEngine(t)

	order := submitOrder(t, reg, model.PriorityNormal)

	// no couriers exist, the order must stay pending
	time.Sleep(100 * time.Millisecond)
	pending, ok := reg.Orders.Get(order.ID)
	require.True(t, ok)
	require.Equal(t, model.OrderPending, pending.Status)
	require.Zero(t, reg.Assignments.Len())

	addCourier(reg, 52.52, 13.405, 3, 4.0)

	require.Eventually(t, func() bool {
		return reg.Assignments.Len() == 1
	}, 2*time.Second, 10*time.Millisecond)

	assigned, _ := reg.Orders.Get(order.ID)
	require.Equal(t, model.OrderAssigned, assigned.Status)
}

func TestCapacityExhaustionFlipsCourierToBusy(t *testing.T) {
	reg := startTestEngine(t)

	courier := addCourier(reg, 52.52, 13.405, 1, 4.0)
	first := submitOrder(t, reg, model.PriorityNormal)
	second := submitOrder(t, reg, model.PriorityNormal)

	require.Eventually(t, func() bool {
		o, _ := reg.Orders.Get(first.ID)
		return o.Status == model.OrderAssigned
	}, 2*time.Second, 10*time.Millisecond)

	busy, _ := reg.Couriers.Get(courier.ID)
	require.Equal(t, model.CourierBusy, busy.Status)
	require.Equal(t, uint8(1), busy.CurrentLoad)

	// the second order keeps cycling through the requeue path
	time.Sleep(300 * time.Millisecond)
	stillPending, _ := reg.Orders.Get(second.ID)
	require.Equal(t, model.OrderPending, stillPending.Status)

	addCourier(reg, 52.52, 13.405, 1, 4.0)

	require.Eventually(t, func() bool {
		o, _ := reg.Orders.Get(second.ID)
		return o.Status == model.OrderAssigned
	}, 2*time.Second, 10*time.Millisecond)
}

func TestLoadConservationAcrossManyOrders(t *testing.T) {
	reg := startTestEngine(t)

	addCourier(reg, 52.52, 13.405, 200, 4.0)
	addCourier(reg, 52.51, 13.40, 200, 4.5)

	const orders = 20
	for i := 0; i < orders; i++ {
		submitOrder(t, reg, model.PriorityNormal)
	}

	require.Eventually(t, func() bool {
		return reg.Assignments.Len() == orders
	}, 5*time.Second, 10*time.Millisecond)

	totalLoad := 0
	reg.Couriers.Range(func(_ uuid.UUID, c model.Courier) bool {
		totalLoad += int(c.CurrentLoad)
		require.LessOrEqual(t, c.CurrentLoad, c.Capacity)
		return true
	})
	require.Equal(t, orders, totalLoad)
}
