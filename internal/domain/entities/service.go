package entities

// Service represents a billable hospital offering (e.g. MRI, ICU).
// Immutable reference data, fetched once per process from the backend.
type Service struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
