package services

import (
	"hospitalcompare/internal/domain/entities"
)

// Badges marks the metrics on which one hospital beats (or ties) the rest
// of a comparison subset.
type Badges struct {
	BestPrice    bool `json:"bestPrice"`
	BestRating   bool `json:"bestRating"`
	BestWaitTime bool `json:"bestWaitTime"`
}

// Any reports whether the hospital holds at least one badge, which marks it
// as an overall best choice.
func (b Badges) Any() bool {
	return b.BestPrice || b.BestRating || b.BestWaitTime
}

// ComputeBadges flags, for each metric, every hospital achieving the optimal
// value across the list: lowest price, lowest waiting time, highest rating.
// Ties are not broken, so one badge can land on several hospitals. The
// result is keyed by hospital id; callers guarantee a non-empty list (the
// selection guard requires at least two entries before comparison runs).
func ComputeBadges(hospitals []entities.Hospital) map[int64]Badges {
	if len(hospitals) == 0 {
		return map[int64]Badges{}
	}

	minPrice := hospitals[0].Price
	minWait := hospitals[0].WaitingTimeMinutes
	maxRating := hospitals[0].AverageRating
	for _, h := range hospitals[1:] {
		if h.Price < minPrice {
			minPrice = h.Price
		}
		if h.WaitingTimeMinutes < minWait {
			minWait = h.WaitingTimeMinutes
		}
		if h.AverageRating > maxRating {
			maxRating = h.AverageRating
		}
	}

	badges := make(map[int64]Badges, len(hospitals))
	for _, h := range hospitals {
		badges[h.ID] = Badges{
			BestPrice:    h.Price == minPrice,
			BestRating:   h.AverageRating == maxRating,
			BestWaitTime: h.WaitingTimeMinutes == minWait,
		}
	}
	return badges
}
