// Package geo provides great-circle distance math used by courier scoring.
package geo

import (
	"math"

	"github.com/parcelops/dispatch/pkg/model"
)

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between a and b in kilometers
// using the haversine formula.
func DistanceKm(a, b model.GeoPoint) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	deltaLat := radians(b.Lat - a.Lat)
	deltaLng := radians(b.Lng - a.Lng)

	sinLat := math.Sin(deltaLat / 2)
	sinLng := math.Sin(deltaLng / 2)

	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	centralAngle := 2 * math.Asin(math.Sqrt(h))

	return earthRadiusKm * centralAngle
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
