package providers

import (
	"context"
)

// Coordinates represents geographical coordinates
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// LocationProvider resolves the device's current position (the browser
// geolocation collaborator). A provider failure must leave search criteria
// untouched; callers translate it into a LocationUnavailable report.
type LocationProvider interface {
	// CurrentLocation returns the device coordinates.
	CurrentLocation(ctx context.Context) (Coordinates, error)
}
