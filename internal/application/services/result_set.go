package services

import (
	"sync"

	"hospitalcompare/internal/domain/entities"
	apperrors "hospitalcompare/pkg/errors"
)

// Selection failures.
var (
	ErrUnknownHospital       = apperrors.NewValidationError("hospital is not part of the current search results")
	ErrInsufficientSelection = apperrors.NewValidationError("please select at least 2 hospitals to compare")
)

// ResultSet holds the hospitals returned for one search submission plus the
// subset currently selected for comparison. Installing a new ResultSet is
// the only way selections are cleared: a fresh set always starts empty.
type ResultSet struct {
	serviceID   int64
	serviceName string
	criteria    entities.SearchCriteria
	hospitals   []entities.Hospital

	mu       sync.Mutex
	selected []int64 // toggle order
}

// NewResultSet builds the result holder for one (service, criteria) pair.
// A nil backend list is normalized so an empty set encodes as an empty
// JSON array, not null.
func NewResultSet(serviceID int64, serviceName string, criteria entities.SearchCriteria, hospitals []entities.Hospital) *ResultSet {
	if hospitals == nil {
		hospitals = []entities.Hospital{}
	}
	return &ResultSet{
		serviceID:   serviceID,
		serviceName: serviceName,
		criteria:    criteria,
		hospitals:   hospitals,
	}
}

// ServiceID returns the searched service id.
func (r *ResultSet) ServiceID() int64 {
	return r.serviceID
}

// ServiceName returns the searched service name for display.
func (r *ResultSet) ServiceName() string {
	return r.serviceName
}

// Criteria returns the criteria the set was produced for.
func (r *ResultSet) Criteria() entities.SearchCriteria {
	return r.criteria
}

// Hospitals returns the result list in backend order.
func (r *ResultSet) Hospitals() []entities.Hospital {
	return r.hospitals
}

// Len returns the number of hospitals in the set.
func (r *ResultSet) Len() int {
	return len(r.hospitals)
}

// Empty reports whether the search found no hospitals. An empty set is a
// rendered empty state, not an error.
func (r *ResultSet) Empty() bool {
	return len(r.hospitals) == 0
}

// Hospital returns the result with the given id.
func (r *ResultSet) Hospital(id int64) (entities.Hospital, bool) {
	for _, h := range r.hospitals {
		if h.ID == id {
			return h, true
		}
	}
	return entities.Hospital{}, false
}

// Toggle flips the comparison selection for a hospital id. Toggling an id
// that is not in the set is rejected. Toggle is its own inverse.
func (r *ResultSet) Toggle(id int64) error {
	if _, ok := r.Hospital(id); !ok {
		return ErrUnknownHospital
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, selected := range r.selected {
		if selected == id {
			r.selected = append(r.selected[:i], r.selected[i+1:]...)
			return nil
		}
	}
	r.selected = append(r.selected, id)
	return nil
}

// IsSelected reports whether the hospital is marked for comparison.
func (r *ResultSet) IsSelected(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, selected := range r.selected {
		if selected == id {
			return true
		}
	}
	return false
}

// SelectedIDs returns the selected hospital ids in toggle order.
func (r *ResultSet) SelectedIDs() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int64, len(r.selected))
	copy(out, r.selected)
	return out
}

// SelectedCount returns the selection size.
func (r *ResultSet) SelectedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.selected)
}
