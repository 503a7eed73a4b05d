package location

import (
	"context"

	"hospitalcompare/internal/domain/providers"
)

// StaticProvider reports a fixed position configured at deployment time
// (kiosk installations know where they stand).
type StaticProvider struct {
	coordinates providers.Coordinates
}

// NewStaticProvider creates a provider that always reports the given position.
func NewStaticProvider(latitude, longitude float64) *StaticProvider {
	return &StaticProvider{
		coordinates: providers.Coordinates{
			Latitude:  latitude,
			Longitude: longitude,
		},
	}
}

// CurrentLocation returns the configured coordinates.
func (p *StaticProvider) CurrentLocation(ctx context.Context) (providers.Coordinates, error) {
	return p.coordinates, nil
}
