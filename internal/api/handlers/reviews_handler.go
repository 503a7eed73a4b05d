package handlers

import (
	"net/http"
	"strconv"

	"hospitalcompare/internal/application/services"
)

// ReviewsHandler handles hospital review endpoints
type ReviewsHandler struct {
	reviews *services.ReviewsService
}

// NewReviewsHandler creates a new reviews handler
func NewReviewsHandler(reviews *services.ReviewsService) *ReviewsHandler {
	return &ReviewsHandler{reviews: reviews}
}

// GetReviews handles GET /app/reviews/{id}
func (h *ReviewsHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	hospitalID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || hospitalID <= 0 {
		respondWithError(w, http.StatusBadRequest, "hospital ID must be a positive integer")
		return
	}

	respondWithJSON(w, http.StatusOK, h.reviews.Load(r.Context(), hospitalID))
}
