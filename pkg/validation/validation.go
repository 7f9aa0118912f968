// Package validation holds the ingress checks applied before any entity
// reaches the registry or the order queue.
package validation

import (
	"errors"
	"strings"

	"go.uber.org/multierr"

	"github.com/parcelops/dispatch/pkg/model"
)

const maxCapacity = 255

var (
	errEmptyName       = errors.New("name cannot be empty")
	errInvalidCapacity = errors.New("capacity must be > 0")
	errMissingPickup   = errors.New("pickup is required")
	errMissingDropoff  = errors.New("dropoff is required")
	errMissingLocation = errors.New("location is required")
)

// CourierName trims surrounding whitespace and rejects empty names.
func CourierName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", errEmptyName
	}
	return trimmed, nil
}

// Capacity rejects non-positive values and caps everything above 255.
func Capacity(capacity int) (uint8, error) {
	if capacity <= 0 {
		return 0, errInvalidCapacity
	}
	if capacity > maxCapacity {
		return maxCapacity, nil
	}
	return uint8(capacity), nil
}

// ClampRating clamps into [0, 5].
func ClampRating(rating float64) float64 {
	if rating < 0 {
		return 0
	}
	if rating > 5 {
		return 5
	}
	return rating
}

// Courier validates a create-courier request and returns the normalized name
// and capacity. All field failures are reported together.
func Courier(name string, capacity int, location *model.GeoPoint) (string, uint8, error) {
	trimmed, nameErr := CourierName(name)
	cap8, capErr := Capacity(capacity)

	var locErr error
	if location == nil {
		locErr = errMissingLocation
	}

	if err := multierr.Combine(nameErr, capErr, locErr); err != nil {
		return "", 0, err
	}
	return trimmed, cap8, nil
}

// Order validates a create-order request.
func Order(pickup, dropoff *model.GeoPoint, priority string) (model.Priority, error) {
	var pickupErr, dropoffErr error
	if pickup == nil {
		pickupErr = errMissingPickup
	}
	if dropoff == nil {
		dropoffErr = errMissingDropoff
	}

	prio, prioErr := model.ParsePriority(priority)

	if err := multierr.Combine(pickupErr, dropoffErr, prioErr); err != nil {
		return "", err
	}
	return prio, nil
}
