package api

import (
	"context"
	"errors"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/parcelops/dispatch/modules/registry"
	"github.com/parcelops/dispatch/pkg/broadcast"
	"github.com/parcelops/dispatch/pkg/dispatchpb"
	"github.com/parcelops/dispatch/pkg/model"
	"github.com/parcelops/dispatch/pkg/validation"
)

// GRPCService mirrors the REST surface over gRPC and adds server-streaming
// assignment watching.
type GRPCService struct {
	reg    *registry.Registry
	logger log.Logger
}

var _ dispatchpb.DispatchServer = (*GRPCService)(nil)

func NewGRPCService(reg *registry.Registry, logger log.Logger) *GRPCService {
	return &GRPCService{
		reg:    reg,
		logger: logger,
	}
}

func (s *GRPCService) CreateCourier(_ context.Context, req *dispatchpb.CreateCourierRequest) (*dispatchpb.Courier, error) {
	var location *model.GeoPoint
	if req.GetLocation() != nil {
		location = &model.GeoPoint{Lat: req.GetLocation().GetLat(), Lng: req.GetLocation().GetLng()}
	}

	name, capacity, err := validation.Courier(req.GetName(), int(req.GetCapacity()), location)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	courier := model.Courier{
		ID:          uuid.New(),
		Name:        name,
		Location:    *location,
		Capacity:    capacity,
		CurrentLoad: 0,
		Status:      model.CourierAvailable,
		Rating:      validation.ClampRating(req.GetRating()),
		UpdatedAt:   time.Now().UTC(),
	}
	s.reg.Couriers.Put(courier.ID, courier)

	return courierToProto(courier), nil
}

func (s *GRPCService) ListCouriers(_ context.Context, _ *dispatchpb.ListCouriersRequest) (*dispatchpb.ListCouriersResponse, error) {
	resp := &dispatchpb.ListCouriersResponse{}
	s.reg.Couriers.Range(func(_ uuid.UUID, c model.Courier) bool {
		resp.Couriers = append(resp.Couriers, courierToProto(c))
		return true
	})
	return resp, nil
}

func (s *GRPCService) CreateOrder(ctx context.Context, req *dispatchpb.CreateOrderRequest) (*dispatchpb.Order, error) {
	var pickup, dropoff *model.GeoPoint
	if req.GetPickup() != nil {
		pickup = &model.GeoPoint{Lat: req.GetPickup().GetLat(), Lng: req.GetPickup().GetLng()}
	}
	if req.GetDropoff() != nil {
		dropoff = &model.GeoPoint{Lat: req.GetDropoff().GetLat(), Lng: req.GetDropoff().GetLng()}
	}

	priority, err := validation.Order(pickup, dropoff, req.GetPriority())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	order := model.Order{
		ID:        uuid.New(),
		Pickup:    *pickup,
		Dropoff:   *dropoff,
		Priority:  priority,
		Status:    model.OrderPending,
		CreatedAt: time.Now().UTC(),
	}
	s.reg.Orders.Put(order.ID, order)

	if err := s.reg.EnqueueOrder(ctx, order); err != nil {
		return nil, status.Errorf(codes.Internal, "enqueue failed: %v", err)
	}

	return orderToProto(order), nil
}

func (s *GRPCService) ListAssignments(_ context.Context, _ *dispatchpb.ListAssignmentsRequest) (*dispatchpb.ListAssignmentsResponse, error) {
	resp := &dispatchpb.ListAssignmentsResponse{}
	s.reg.Assignments.Range(func(_ uuid.UUID, a model.Assignment) bool {
		resp.Assignments = append(resp.Assignments, assignmentToProto(a))
		return true
	})
	return resp, nil
}

func (s *GRPCService) WatchAssignments(_ *dispatchpb.WatchAssignmentsRequest, stream dispatchpb.Dispatch_WatchAssignmentsServer) error {
	ctx := stream.Context()
	sub := s.reg.Subscribe()

	for {
		assignment, err := sub.Recv(ctx)
		if err != nil {
			var lag broadcast.ErrLagged
			if errors.As(err, &lag) {
				level.Warn(s.logger).Log("msg", "assignment stream lagged, events dropped", "count", lag.Count)
				continue
			}
			// context cancellation, the client hung up
			return nil
		}

		if err := stream.Send(assignmentToProto(assignment)); err != nil {
			return err
		}
	}
}

func courierToProto(c model.Courier) *dispatchpb.Courier {
	return &dispatchpb.Courier{
		Id:          c.ID.String(),
		Name:        c.Name,
		Location:    &dispatchpb.GeoPoint{Lat: c.Location.Lat, Lng: c.Location.Lng},
		Capacity:    uint32(c.Capacity),
		CurrentLoad: uint32(c.CurrentLoad),
		Status:      string(c.Status),
		Rating:      c.Rating,
	}
}

func orderToProto(o model.Order) *dispatchpb.Order {
	return &dispatchpb.Order{
		Id:       o.ID.String(),
		Pickup:   &dispatchpb.GeoPoint{Lat: o.Pickup.Lat, Lng: o.Pickup.Lng},
		Dropoff:  &dispatchpb.GeoPoint{Lat: o.Dropoff.Lat, Lng: o.Dropoff.Lng},
		Priority: string(o.Priority),
		Status:   string(o.Status),
	}
}

func assignmentToProto(a model.Assignment) *dispatchpb.AssignmentEvent {
	return &dispatchpb.AssignmentEvent{
		Id:        a.ID.String(),
		OrderId:   a.OrderID.String(),
		CourierId: a.CourierID.String(),
		Score:     a.Score,
		ScoreBreakdown: &dispatchpb.ScoreBreakdown{
			DistanceScore: a.ScoreBreakdown.DistanceScore,
			LoadScore:     a.ScoreBreakdown.LoadScore,
			RatingScore:   a.ScoreBreakdown.RatingScore,
			PriorityScore: a.ScoreBreakdown.PriorityScore,
		},
		AssignedAt: a.AssignedAt.Format(time.RFC3339Nano),
	}
}
