package handlers

import (
	"errors"
	"net/http"

	"hospitalcompare/internal/application/services"
	"hospitalcompare/internal/domain/entities"
)

// SearchHandler handles the search-and-compare workflow endpoints
type SearchHandler struct {
	search *services.SearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(search *services.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

type searchRequest struct {
	ServiceID int64    `json:"serviceId"`
	City      string   `json:"city"`
	Area      string   `json:"area"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	RadiusKm  *float64 `json:"radiusKm"`
}

// criteria applies the default radius when the client omits one.
func (req searchRequest) criteria() entities.SearchCriteria {
	c := entities.NewSearchCriteria(req.ServiceID, req.City, req.Area)
	c.Latitude = req.Latitude
	c.Longitude = req.Longitude
	if req.RadiusKm != nil {
		c.RadiusKm = *req.RadiusKm
	}
	return c
}

// ListServices handles GET /app/services
func (h *SearchHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.search.Services(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"services": catalog,
		"count":    len(catalog),
	})
}

// Search handles POST /app/search
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondWithAppError(w, err)
		return
	}

	results, err := h.search.Search(r.Context(), req.criteria())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, resultSetPayload(results))
}

// Locate handles POST /app/search/locate. It fills the criteria from the
// device position. A location failure is reported inline so the form stays
// usable for manual entry.
func (h *SearchHandler) Locate(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondWithAppError(w, err)
		return
	}

	criteria := req.criteria()
	if err := h.search.UseMyLocation(r.Context(), &criteria); err != nil {
		if errors.Is(err, services.ErrLocationUnavailable) {
			respondWithJSON(w, http.StatusOK, map[string]interface{}{
				"criteria":      criteria,
				"locationError": services.ErrLocationUnavailable.Message,
			})
			return
		}
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"criteria": criteria,
	})
}

// Results handles GET /app/results
func (h *SearchHandler) Results(w http.ResponseWriter, r *http.Request) {
	results := h.search.Current()
	if results == nil {
		respondWithError(w, http.StatusNotFound, "no search has been run yet")
		return
	}

	respondWithJSON(w, http.StatusOK, resultSetPayload(results))
}

type toggleRequest struct {
	HospitalID int64 `json:"hospitalId"`
}

// ToggleSelection handles POST /app/selection/toggle
func (h *SearchHandler) ToggleSelection(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondWithAppError(w, err)
		return
	}

	results := h.search.Current()
	if results == nil {
		respondWithError(w, http.StatusNotFound, "no search has been run yet")
		return
	}

	if err := results.Toggle(req.HospitalID); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"hospitalId":    req.HospitalID,
		"selected":      results.IsSelected(req.HospitalID),
		"selectedIds":   results.SelectedIDs(),
		"selectedCount": results.SelectedCount(),
	})
}

// Compare handles POST /app/compare
func (h *SearchHandler) Compare(w http.ResponseWriter, r *http.Request) {
	comparison, err := h.search.RequestComparison(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, comparison)
}

// ActiveComparison handles GET /app/compare
func (h *SearchHandler) ActiveComparison(w http.ResponseWriter, r *http.Request) {
	comparison := h.search.ActiveComparison()
	if comparison == nil {
		respondWithError(w, http.StatusNotFound, "no comparison is active")
		return
	}

	respondWithJSON(w, http.StatusOK, comparison)
}

func resultSetPayload(results *services.ResultSet) map[string]interface{} {
	return map[string]interface{}{
		"serviceName":   results.ServiceName(),
		"criteria":      results.Criteria(),
		"hospitals":     results.Hospitals(),
		"count":         results.Len(),
		"selectedIds":   results.SelectedIDs(),
		"selectedCount": results.SelectedCount(),
	}
}
