package services

import (
	"context"
	"sync"

	"hospitalcompare/internal/domain/entities"
	"hospitalcompare/internal/infrastructure/clients/hospitalapi"
	apperrors "hospitalcompare/pkg/errors"
)

// ReviewsView is the read-only payload for one hospital's reviews page.
// The list and the stats load independently: either side can fail without
// hiding the other.
type ReviewsView struct {
	HospitalID   int64                 `json:"hospitalId"`
	Reviews      []entities.Review     `json:"reviews"`
	ReviewsError string                `json:"reviewsError,omitempty"`
	Stats        *entities.RatingStats `json:"stats,omitempty"`
	StatsError   string                `json:"statsError,omitempty"`
}

// ReviewsService fetches reviews and aggregate rating stats.
type ReviewsService struct {
	client hospitalapi.Client
}

// NewReviewsService creates the reviews service.
func NewReviewsService(client hospitalapi.Client) *ReviewsService {
	return &ReviewsService{client: client}
}

// Load fetches the review list and the rating stats as two independently
// awaited calls; their completions may interleave in either order. Backend
// order of reviews is preserved.
func (s *ReviewsService) Load(ctx context.Context, hospitalID int64) ReviewsView {
	view := ReviewsView{HospitalID: hospitalID}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		reviews, err := s.client.ReviewsByHospital(ctx, hospitalID)
		if err != nil {
			view.ReviewsError = userMessage(err, "failed to load reviews")
			return
		}
		view.Reviews = reviews
	}()

	go func() {
		defer wg.Done()
		stats, err := s.client.RatingStats(ctx, hospitalID)
		if err != nil {
			view.StatsError = userMessage(err, "failed to load rating stats")
			return
		}
		view.Stats = stats
	}()

	wg.Wait()
	return view
}

// userMessage surfaces the backend's message when one exists, else the
// generic fallback.
func userMessage(err error, fallback string) string {
	if appErr, ok := err.(*apperrors.AppError); ok && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
