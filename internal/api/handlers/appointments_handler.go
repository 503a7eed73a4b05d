package handlers

import (
	"net/http"

	"hospitalcompare/internal/application/services"
)

// AppointmentsHandler handles the appointment history endpoint
type AppointmentsHandler struct {
	appointments *services.AppointmentsService
}

// NewAppointmentsHandler creates a new appointments handler
func NewAppointmentsHandler(appointments *services.AppointmentsService) *AppointmentsHandler {
	return &AppointmentsHandler{appointments: appointments}
}

// ListAppointments handles GET /app/appointments
func (h *AppointmentsHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointments.ListForCurrentUser(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"appointments": appointments,
		"count":        len(appointments),
	})
}
