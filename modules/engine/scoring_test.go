package engine

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/parcelops/dispatch/pkg/model"
)

func testCourier(lat, lng float64, load, capacity uint8, rating float64) model.Courier {
	return model.Courier{
		ID:          uuid.New(),
		Name:        "test-courier",
		Location:    model.GeoPoint{Lat: lat, Lng: lng},
		Capacity:    capacity,
		CurrentLoad: load,
		Status:      model.CourierAvailable,
		Rating:      rating,
		UpdatedAt:   time.Now(),
	}
}

func testOrder(priority model.Priority, lat, lng float64) model.Order {
	return model.Order{
		ID:        uuid.New(),
		Pickup:    model.GeoPoint{Lat: lat, Lng: lng},
		Dropoff:   model.GeoPoint{Lat: lat + 0.01, Lng: lng + 0.01},
		Priority:  priority,
		Status:    model.OrderPending,
		CreatedAt: time.Now(),
	}
}

func TestCloserCourierScoresHigher(t *testing.T) {
	order := testOrder(model.PriorityNormal, 53.5511, 9.9937)

	near := testCourier(53.5512, 9.9938, 0, 3, 4.5)
	far := testCourier(53.7, 10.2, 0, 3, 4.5)

	nearScore, _ := Score(near, order)
	farScore, _ := Score(far, order)
	require.Greater(t, nearScore, farScore)
}

func TestLighterLoadScoresHigher(t *testing.T) {
	order := testOrder(model.PriorityNormal, 53.5511, 9.9937)

	light := testCourier(53.5512, 9.9938, 0, 3, 4.5)
	heavy := testCourier(53.5512, 9.9938, 2, 3, 4.5)

	lightScore, _ := Score(light, order)
	heavyScore, _ := Score(heavy, order)
	require.Greater(t, lightScore, heavyScore)
}

func TestHigherRatingScoresHigher(t *testing.T) {
	order := testOrder(model.PriorityNormal, 53.5511, 9.9937)

	better := testCourier(53.5512, 9.9938, 0, 3, 5.0)
	worse := testCourier(53.5512, 9.9938, 0, 3, 2.0)

	betterScore, _ := Score(better, order)
	worseScore, _ := Score(worse, order)
	require.Greater(t, betterScore, worseScore)
}

func TestPriorityRankOrdering(t *testing.T) {
	courier := testCourier(53.5512, 9.9938, 0, 3, 4.5)

	var prev float64
	for i, p := range []model.Priority{model.PriorityLow, model.PriorityNormal, model.PriorityHigh, model.PriorityUrgent} {
		score, breakdown := Score(courier, testOrder(p, 53.5511, 9.9937))
		if i > 0 {
			require.Greater(t, score, prev, "priority %s must outscore the previous rank", p)
		}
		require.GreaterOrEqual(t, breakdown.PriorityScore, 0.5)
		prev = score
	}
}

func TestScoreAndFactorsStayInRange(t *testing.T) {
	couriers := []model.Courier{
		testCourier(0, 0, 0, 1, 0),
		testCourier(89, 179, 255, 255, 5),
		testCourier(-89, -179, 3, 3, 9.9), // rating beyond clamp range
	}
	order := testOrder(model.PriorityUrgent, 52.52, 13.405)

	for _, c := range couriers {
		total, b := Score(c, order)
		for _, v := range []float64{total, b.DistanceScore, b.LoadScore, b.RatingScore, b.PriorityScore} {
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestZeroCapacityLoadScoreIsZero(t *testing.T) {
	require.Equal(t, 0.0, loadScore(0, 0))
}
