package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GeoPoint is a WGS84 coordinate. Callers are trusted to pass sane values,
// the distance math is defined on the full sphere.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CourierStatus is the wire form of a courier's availability. The literal
// strings are part of the REST and gRPC contract.
type CourierStatus string

const (
	CourierAvailable CourierStatus = "Available"
	CourierBusy      CourierStatus = "Busy"
	CourierOffline   CourierStatus = "Offline"
)

func ParseCourierStatus(s string) (CourierStatus, error) {
	switch CourierStatus(s) {
	case CourierAvailable, CourierBusy, CourierOffline:
		return CourierStatus(s), nil
	}
	return "", fmt.Errorf("unknown courier status: %s, expected Available/Busy/Offline", s)
}

// OrderStatus tracks an order through its lifecycle. The engine only ever
// moves orders from Pending to Assigned, the later states exist for the wire
// contract.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderAssigned  OrderStatus = "Assigned"
	OrderInTransit OrderStatus = "InTransit"
	OrderDelivered OrderStatus = "Delivered"
)

// Priority influences scoring only, not queue order.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityNormal Priority = "Normal"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return Priority(s), nil
	}
	return "", fmt.Errorf("unknown priority: %s, expected Low/Normal/High/Urgent", s)
}

type Courier struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Location    GeoPoint      `json:"location"`
	Capacity    uint8         `json:"capacity"`
	CurrentLoad uint8         `json:"current_load"`
	Status      CourierStatus `json:"status"`
	Rating      float64       `json:"rating"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type Order struct {
	ID              uuid.UUID   `json:"id"`
	Pickup          GeoPoint    `json:"pickup"`
	Dropoff         GeoPoint    `json:"dropoff"`
	Priority        Priority    `json:"priority"`
	Status          OrderStatus `json:"status"`
	AssignedCourier *uuid.UUID  `json:"assigned_courier"`
	CreatedAt       time.Time   `json:"created_at"`
}

// ScoreBreakdown holds the four normalized sub-scores before weighting.
// All components lie in [0, 1].
type ScoreBreakdown struct {
	DistanceScore float64 `json:"distance_score"`
	LoadScore     float64 `json:"load_score"`
	RatingScore   float64 `json:"rating_score"`
	PriorityScore float64 `json:"priority_score"`
}

// Assignment binds one order to one courier. Immutable once created.
type Assignment struct {
	ID             uuid.UUID      `json:"id"`
	OrderID        uuid.UUID      `json:"order_id"`
	CourierID      uuid.UUID      `json:"courier_id"`
	Score          float64        `json:"score"`
	ScoreBreakdown ScoreBreakdown `json:"score_breakdown"`
	AssignedAt     time.Time      `json:"assigned_at"`
}
