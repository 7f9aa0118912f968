package api

import (
	"context"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/grafana/dskit/services"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/parcelops/dispatch/modules/engine"
	"github.com/parcelops/dispatch/modules/registry"
	"github.com/parcelops/dispatch/pkg/dispatchpb"
)

func newTestGRPCService(t *testing.T) *GRPCService {
	reg := registry.New(registry.Config{OrderQueueSize: 64, EventBufferSize: 64})
	eng := engine.New(reg, log.NewNopLogger())
	require.NoError(t, services.StartAndAwaitRunning(context.Background(), eng))
	t.Cleanup(func() {
		reg.Close()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, services.StopAndAwaitTerminated(ctx, eng))
	})

	return NewGRPCService(reg, log.NewNopLogger())
}

func grpcCreateCourier(t *testing.T, svc *GRPCService) *dispatchpb.Courier {
	courier, err := svc.CreateCourier(context.Background(), &dispatchpb.CreateCourierRequest{
		Name:     "ada",
		Location: &dispatchpb.GeoPoint{Lat: 52.52, Lng: 13.405},
		Capacity: 3,
		Rating:   4.8,
	})
	require.NoError(t, err)
	return courier
}

func grpcCreateOrder(t *testing.T, svc *GRPCService) *dispatchpb.Order {
	order, err := svc.CreateOrder(context.Background(), &dispatchpb.CreateOrderRequest{
		Pickup:   &dispatchpb.GeoPoint{Lat: 52.51, Lng: 13.39},
		Dropoff:  &dispatchpb.GeoPoint{Lat: 52.54, Lng: 13.42},
		Priority: "Urgent",
	})
	require.NoError(t, err)
	return order
}

func TestGRPCCreateCourierValidation(t *testing.T) {
	svc := newTestGRPCService(t)

	_, err := svc.CreateCourier(context.Background(), &dispatchpb.CreateCourierRequest{
		Name:     "  ",
		Location: &dispatchpb.GeoPoint{},
		Capacity: 3,
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.CreateCourier(context.Background(), &dispatchpb.CreateCourierRequest{
		Name:     "ada",
		Capacity: 3,
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	require.Contains(t, err.Error(), "location is required")
}

func TestGRPCCreateOrderRejectsUnknownPriority(t *testing.T) {
	svc := newTestGRPCService(t)

	_, err := svc.CreateOrder(context.Background(), &dispatchpb.CreateOrderRequest{
		Pickup:   &dispatchpb.GeoPoint{Lat: 0, Lng: 0},
		Dropoff:  &dispatchpb.GeoPoint{Lat: 1, Lng: 1},
		Priority: "Whenever",
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	require.Contains(t, err.Error(), "unknown priority")
}

func TestGRPCFullFlow(t *testing.T) {
	svc := newTestGRPCService(t)

	courier := grpcCreateCourier(t, svc)
	require.Equal(t, "Available", courier.GetStatus())
	require.Equal(t, uint32(0), courier.GetCurrentLoad())

	order := grpcCreateOrder(t, svc)
	require.Equal(t, "Pending", order.GetStatus())
	require.Equal(t, "Urgent", order.GetPriority())

	require.Eventually(t, func() bool {
		resp, err := svc.ListAssignments(context.Background(), &dispatchpb.ListAssignmentsRequest{})
		require.NoError(t, err)
		return len(resp.GetAssignments()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	resp, err := svc.ListAssignments(context.Background(), &dispatchpb.ListAssignmentsRequest{})
	require.NoError(t, err)
	event := resp.GetAssignments()[0]
	require.Equal(t, order.GetId(), event.GetOrderId())
	require.Equal(t, courier.GetId(), event.GetCourierId())
	require.NotNil(t, event.GetScoreBreakdown())

	_, err = time.Parse(time.RFC3339Nano, event.GetAssignedAt())
	require.NoError(t, err)

	couriers, err := svc.ListCouriers(context.Background(), &dispatchpb.ListCouriersRequest{})
	require.NoError(t, err)
	require.Len(t, couriers.GetCouriers(), 1)
	require.Equal(t, uint32(1), couriers.GetCouriers()[0].GetCurrentLoad())
}

type fakeWatchStream struct {
	grpc.ServerStream
	ctx    context.Context
	events chan *dispatchpb.AssignmentEvent
}

func (s *fakeWatchStream) Context() context.Context { return s.ctx }

func (s *fakeWatchStream) Send(e *dispatchpb.AssignmentEvent) error {
	s.events <- e
	return nil
}

func TestGRPCWatchAssignmentsStreamsEvents(t *testing.T) {
	svc := newTestGRPCService(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream := &fakeWatchStream{
		ctx:    ctx,
		events: make(chan *dispatchpb.AssignmentEvent, 64),
	}

	done := make(chan error, 1)
	go func() {
		done <- svc.WatchAssignments(&dispatchpb.WatchAssignmentsRequest{}, stream)
	}()

	courier, err := svc.CreateCourier(context.Background(), &dispatchpb.CreateCourierRequest{
		Name:     "ada",
		Location: &dispatchpb.GeoPoint{Lat: 52.52, Lng: 13.405},
		Capacity: 255,
		Rating:   4.8,
	})
	require.NoError(t, err)

	// the subscription starts at the write position when the stream goroutine
	// gets to it, so orders assigned before that are never delivered. Keep
	// producing until one lands on the stream.
	var event *dispatchpb.AssignmentEvent
	require.Eventually(t, func() bool {
		_, err := svc.CreateOrder(context.Background(), &dispatchpb.CreateOrderRequest{
			Pickup:   &dispatchpb.GeoPoint{Lat: 52.51, Lng: 13.39},
			Dropoff:  &dispatchpb.GeoPoint{Lat: 52.54, Lng: 13.42},
			Priority: "Urgent",
		})
		if err != nil {
			return false
		}
		select {
		case event = <-stream.events:
			return true
		default:
			return false
		}
	}, 5*time.Second, 50*time.Millisecond)

	require.Equal(t, courier.GetId(), event.GetCourierId())
	require.Greater(t, event.GetScore(), 0.0)
	require.NotNil(t, event.GetScoreBreakdown())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watch did not stop on context cancellation")
	}
}
