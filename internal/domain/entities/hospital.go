package entities

// Hospital represents one hospital row returned by the backend search.
// Field names follow the backend search DTO; the struct is read-only in
// the application.
type Hospital struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	Latitude           *float64 `json:"latitude,omitempty"`
	Longitude          *float64 `json:"longitude,omitempty"`
	Phone              string   `json:"phone"`
	DistanceKm         *float64 `json:"distance,omitempty"`
	Price              float64  `json:"price"`
	Availability       bool     `json:"availability"`
	WaitingTimeMinutes int      `json:"waitingTime"`
	AverageRating      float64  `json:"averageRating"`
	ReviewCount        int64    `json:"reviewCount"`
}
