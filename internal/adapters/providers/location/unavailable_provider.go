package location

import (
	"context"
	"fmt"

	"hospitalcompare/internal/domain/providers"
)

// UnavailableProvider stands in when no location source is configured,
// matching a device without geolocation support. Manual search is never
// blocked by it.
type UnavailableProvider struct{}

// NewUnavailableProvider creates a provider that always fails.
func NewUnavailableProvider() *UnavailableProvider {
	return &UnavailableProvider{}
}

// CurrentLocation always reports that no location source exists.
func (p *UnavailableProvider) CurrentLocation(ctx context.Context) (providers.Coordinates, error) {
	return providers.Coordinates{}, fmt.Errorf("no location source configured")
}
