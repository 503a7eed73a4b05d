package entities

import (
	"strings"

	apperrors "hospitalcompare/pkg/errors"
)

// Search radius bounds in kilometers. The UI constrains the input range;
// Validate defends against bypass.
const (
	MinRadiusKm     = 1
	MaxRadiusKm     = 20
	DefaultRadiusKm = 20
)

// Criteria validation failures, checked in order; first failure wins.
var (
	ErrMissingService = apperrors.NewValidationError("please select a healthcare service")
	ErrMissingCity    = apperrors.NewValidationError("city is mandatory for search")
	ErrInvalidRadius  = apperrors.NewValidationError("search radius must be between 1 and 20 km")
)

// SearchCriteria holds one search submission. Constructed fresh per search
// and never mutated after submission.
type SearchCriteria struct {
	ServiceID int64    `json:"serviceId"`
	City      string   `json:"city"`
	Area      string   `json:"area,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	RadiusKm  float64  `json:"radiusKm"`
}

// NewSearchCriteria returns criteria with the default radius applied.
func NewSearchCriteria(serviceID int64, city, area string) SearchCriteria {
	return SearchCriteria{
		ServiceID: serviceID,
		City:      city,
		Area:      area,
		RadiusKm:  DefaultRadiusKm,
	}
}

// Validate applies the submission rules in order: service, city, radius.
func (c SearchCriteria) Validate() error {
	if c.ServiceID == 0 {
		return ErrMissingService
	}
	if strings.TrimSpace(c.City) == "" {
		return ErrMissingCity
	}
	if c.RadiusKm < MinRadiusKm || c.RadiusKm > MaxRadiusKm {
		return ErrInvalidRadius
	}
	return nil
}

// HasCoordinates reports whether GPS coordinates are present.
func (c SearchCriteria) HasCoordinates() bool {
	return c.Latitude != nil && c.Longitude != nil
}
