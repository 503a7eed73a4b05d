package entities

// Review is a single patient review of a hospital.
type Review struct {
	ID        int64         `json:"id"`
	Rating    int           `json:"rating"` // 1-5
	Comment   string        `json:"comment,omitempty"`
	CreatedAt LocalDateTime `json:"createdAt"`
}

// RatingStats is the aggregate rating summary for a hospital.
type RatingStats struct {
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int64   `json:"totalReviews"`
}
