package handlers

import (
	"errors"
	"net/http"
	"time"

	"hospitalcompare/internal/application/services"
	apperrors "hospitalcompare/pkg/errors"
)

// BookingHandler handles appointment booking endpoints
type BookingHandler struct {
	flow   *services.BookingFlow
	search *services.SearchService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(flow *services.BookingFlow, search *services.SearchService) *BookingHandler {
	return &BookingHandler{flow: flow, search: search}
}

type bookingTargetRequest struct {
	HospitalID int64 `json:"hospitalId"`
}

// SetTarget handles POST /app/book/target. The hospital must come from the
// current search results.
func (h *BookingHandler) SetTarget(w http.ResponseWriter, r *http.Request) {
	var req bookingTargetRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondWithAppError(w, err)
		return
	}

	results := h.search.Current()
	if results == nil {
		respondWithError(w, http.StatusNotFound, "no search has been run yet")
		return
	}

	hospital, ok := results.Hospital(req.HospitalID)
	if !ok {
		respondWithAppError(w, services.ErrUnknownHospital)
		return
	}

	h.flow.SetTarget(hospital, results.ServiceID(), results.ServiceName())

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"state":       h.flow.State(),
		"hospital":    hospital,
		"serviceName": results.ServiceName(),
	})
}

type bookingSubmitRequest struct {
	PatientName     string `json:"patientName"`
	PatientPhone    string `json:"patientPhone"`
	AppointmentDate string `json:"appointmentDate"`
}

// Accepted on input; responses always use the backend's zone-less layout.
var bookingDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

func parseBookingDate(raw string) (time.Time, error) {
	for _, layout := range bookingDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.NewValidationError("appointment date is not a valid date")
}

// Submit handles POST /app/book
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req bookingSubmitRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondWithAppError(w, err)
		return
	}

	date, err := parseBookingDate(req.AppointmentDate)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	confirmation, err := h.flow.Submit(r.Context(), services.BookingForm{
		PatientName:     req.PatientName,
		PatientPhone:    req.PatientPhone,
		AppointmentDate: date,
	})
	if err != nil {
		// The login page can send the user back here afterwards.
		if errors.Is(err, services.ErrAuthenticationRequired) {
			respondWithJSON(w, http.StatusUnauthorized, map[string]string{
				"error":    services.ErrAuthenticationRequired.Message,
				"redirect": "/login?next=/booking",
			})
			return
		}
		if apperrors.TypeOf(err) == apperrors.ErrorTypeBackend {
			respondWithJSON(w, http.StatusBadGateway, map[string]interface{}{
				"state":          h.flow.State(),
				"failureMessage": h.flow.FailureMessage(),
			})
			return
		}
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"state":        h.flow.State(),
		"confirmation": confirmation,
	})
}

// Status handles GET /app/book
func (h *BookingHandler) Status(w http.ResponseWriter, r *http.Request) {
	payload := map[string]interface{}{
		"state": h.flow.State(),
	}
	if confirmation := h.flow.Confirmation(); confirmation != nil {
		payload["confirmation"] = confirmation
	}
	if msg := h.flow.FailureMessage(); msg != "" {
		payload["failureMessage"] = msg
	}

	respondWithJSON(w, http.StatusOK, payload)
}
