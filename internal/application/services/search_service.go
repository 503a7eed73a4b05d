package services

import (
	"context"
	"sync"

	"hospitalcompare/internal/domain/entities"
	"hospitalcompare/internal/domain/providers"
	"hospitalcompare/internal/infrastructure/clients/hospitalapi"
	apperrors "hospitalcompare/pkg/errors"
)

var (
	// ErrLocationUnavailable is reported when the device position cannot be
	// resolved. Manual submission is never blocked by it.
	ErrLocationUnavailable = apperrors.NewValidationError("unable to get device location, please enter the city manually")

	// ErrSearchInFlight rejects a duplicate submission while one search is
	// still outstanding.
	ErrSearchInFlight = apperrors.NewValidationError("a search is already in progress")

	// ErrComparisonInFlight rejects a duplicate comparison request.
	ErrComparisonInFlight = apperrors.NewValidationError("a comparison is already in progress")

	// ErrComparisonSuperseded discards a comparison result that arrived
	// after a new search replaced the result set it was requested for.
	ErrComparisonSuperseded = apperrors.NewValidationError("the search results changed, please compare again")

	// ErrLocationInFlight rejects a duplicate location request while one
	// is still resolving.
	ErrLocationInFlight = apperrors.NewValidationError("a location request is already in progress")
)

// Comparison is the active comparison payload: the backend's subset plus
// the per-hospital badges computed over it.
type Comparison struct {
	ServiceName string              `json:"serviceName"`
	Hospitals   []entities.Hospital `json:"hospitals"`
	Badges      map[int64]Badges    `json:"badges"`
}

// SearchService drives the search-and-compare workflow: it validates
// criteria, runs the backend search, owns the current ResultSet, and turns
// a selection into a comparison.
type SearchService struct {
	client   hospitalapi.Client
	location providers.LocationProvider

	mu         sync.Mutex
	services   []entities.Service
	current    *ResultSet
	comparison *Comparison
	searching  bool
	comparing  bool
	locating   bool
}

// NewSearchService creates the search workflow service.
func NewSearchService(client hospitalapi.Client, location providers.LocationProvider) *SearchService {
	return &SearchService{
		client:   client,
		location: location,
	}
}

// Services returns the service catalog, fetching it from the backend on
// first use. The catalog is immutable reference data for the process.
func (s *SearchService) Services(ctx context.Context) ([]entities.Service, error) {
	s.mu.Lock()
	if s.services != nil {
		cached := s.services
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	services, err := s.client.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.services = services
	s.mu.Unlock()
	return services, nil
}

// Search validates the criteria and runs one backend search. On success the
// response replaces the current ResultSet, which clears any selection, and
// drops the active comparison. Only one search may be in flight at a time.
func (s *SearchService) Search(ctx context.Context, criteria entities.SearchCriteria) (*ResultSet, error) {
	services, err := s.Services(ctx)
	if err != nil {
		return nil, err
	}

	serviceName, known := serviceName(services, criteria.ServiceID)
	if !known {
		return nil, entities.ErrMissingService
	}
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.searching {
		s.mu.Unlock()
		return nil, ErrSearchInFlight
	}
	s.searching = true
	s.mu.Unlock()

	hospitals, err := s.client.SearchHospitals(ctx, criteria)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.searching = false
	if err != nil {
		return nil, err
	}

	result := NewResultSet(criteria.ServiceID, serviceName, criteria, hospitals)
	s.current = result
	s.comparison = nil
	return result, nil
}

// Current returns the active ResultSet, or nil before the first search.
func (s *SearchService) Current() *ResultSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// UseMyLocation resolves the device position into the criteria. On success
// the coordinates are set and reverse geocoding overwrites city/area; a
// reverse-geocoding failure keeps the coordinates and leaves city/area as
// typed. A location failure changes nothing and reports
// ErrLocationUnavailable. Only one location request may be in flight at a
// time.
func (s *SearchService) UseMyLocation(ctx context.Context, criteria *entities.SearchCriteria) error {
	s.mu.Lock()
	if s.locating {
		s.mu.Unlock()
		return ErrLocationInFlight
	}
	s.locating = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.locating = false
		s.mu.Unlock()
	}()

	coords, err := s.location.CurrentLocation(ctx)
	if err != nil {
		return ErrLocationUnavailable
	}

	latitude := coords.Latitude
	longitude := coords.Longitude
	criteria.Latitude = &latitude
	criteria.Longitude = &longitude

	geocoded, err := s.client.ReverseGeocode(ctx, latitude, longitude)
	if err != nil {
		// Coordinates stay usable; the user keeps their typed city/area.
		return nil
	}
	if geocoded.City != "" {
		criteria.City = geocoded.City
	}
	if geocoded.Area != "" {
		criteria.Area = geocoded.Area
	}
	return nil
}

// RequestComparison sends the current selection to the backend compare
// endpoint and installs the response as the active comparison. Fewer than
// two selected hospitals is reported as ErrInsufficientSelection.
func (s *SearchService) RequestComparison(ctx context.Context) (*Comparison, error) {
	s.mu.Lock()
	current := s.current
	s.mu.Unlock()

	if current == nil {
		return nil, ErrInsufficientSelection
	}
	ids := current.SelectedIDs()
	if len(ids) < 2 {
		return nil, ErrInsufficientSelection
	}

	s.mu.Lock()
	if s.comparing {
		s.mu.Unlock()
		return nil, ErrComparisonInFlight
	}
	s.comparing = true
	s.mu.Unlock()

	hospitals, err := s.client.CompareHospitals(ctx, current.ServiceID(), ids)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.comparing = false
	if err != nil {
		return nil, err
	}
	if s.current != current {
		// The selection this comparison was requested for is gone; a result
		// for a superseded ResultSet must not become the active comparison.
		return nil, ErrComparisonSuperseded
	}

	comparison := &Comparison{
		ServiceName: current.ServiceName(),
		Hospitals:   hospitals,
		Badges:      ComputeBadges(hospitals),
	}
	s.comparison = comparison
	return comparison, nil
}

// ActiveComparison returns the last comparison payload, or nil.
func (s *SearchService) ActiveComparison() *Comparison {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.comparison
}

func serviceName(services []entities.Service, id int64) (string, bool) {
	for _, svc := range services {
		if svc.ID == id {
			return svc.Name, true
		}
	}
	return "", false
}
