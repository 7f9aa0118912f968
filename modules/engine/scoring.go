package engine

import (
	"github.com/parcelops/dispatch/pkg/geo"
	"github.com/parcelops/dispatch/pkg/model"
)

const (
	distanceWeight = 0.40
	loadWeight     = 0.30
	ratingWeight   = 0.20
	priorityWeight = 0.10
)

// Score rates how well a courier fits an order. All factor outputs lie in
// [0, 1] and the weights sum to 1.0, so the total does too. Pure and
// deterministic, only the courier location and the order pickup participate
// in the distance factor.
func Score(courier model.Courier, order model.Order) (float64, model.ScoreBreakdown) {
	distanceKm := geo.DistanceKm(courier.Location, order.Pickup)

	breakdown := model.ScoreBreakdown{
		DistanceScore: distanceScore(distanceKm),
		LoadScore:     loadScore(courier.CurrentLoad, courier.Capacity),
		RatingScore:   ratingScore(courier.Rating),
		PriorityScore: priorityScore(order.Priority),
	}

	total := breakdown.DistanceScore*distanceWeight +
		breakdown.LoadScore*loadWeight +
		breakdown.RatingScore*ratingWeight +
		breakdown.PriorityScore*priorityWeight

	return total, breakdown
}

func distanceScore(distanceKm float64) float64 {
	if distanceKm < 0 {
		distanceKm = 0
	}
	return 1 / (1 + distanceKm)
}

func loadScore(currentLoad, capacity uint8) float64 {
	if capacity == 0 {
		return 0
	}
	return clamp01(1 - float64(currentLoad)/float64(capacity))
}

func ratingScore(rating float64) float64 {
	return clamp01(rating / 5)
}

func priorityScore(p model.Priority) float64 {
	switch p {
	case model.PriorityLow:
		return 0.50
	case model.PriorityNormal:
		return 0.70
	case model.PriorityHigh:
		return 0.85
	case model.PriorityUrgent:
		return 1.00
	}
	return 0.70
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
