package geo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parcelops/dispatch/pkg/model"
)

func TestDistanceKmZeroForSamePoint(t *testing.T) {
	p := model.GeoPoint{Lat: 53.5511, Lng: 9.9937}
	require.Less(t, DistanceKm(p, p), 1e-9)
}

func TestDistanceKmIsSymmetric(t *testing.T) {
	berlin := model.GeoPoint{Lat: 52.52, Lng: 13.405}
	hamburg := model.GeoPoint{Lat: 53.5511, Lng: 9.9937}

	require.InDelta(t, DistanceKm(berlin, hamburg), DistanceKm(hamburg, berlin), 1e-9)
}

func TestDistanceKmLondonToParis(t *testing.T) {
	london := model.GeoPoint{Lat: 51.5074, Lng: -0.1278}
	paris := model.GeoPoint{Lat: 48.8566, Lng: 2.3522}

	d := DistanceKm(london, paris)
	require.Greater(t, d, 338.0)
	require.Less(t, d, 348.0)
}
