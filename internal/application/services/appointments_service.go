package services

import (
	"context"

	"hospitalcompare/internal/domain/entities"
	"hospitalcompare/internal/domain/providers"
	"hospitalcompare/internal/infrastructure/clients/hospitalapi"
)

// AppointmentsService lists the session user's booked appointments.
type AppointmentsService struct {
	client  hospitalapi.Client
	session providers.SessionStore
}

// NewAppointmentsService creates the appointments service.
func NewAppointmentsService(client hospitalapi.Client, session providers.SessionStore) *AppointmentsService {
	return &AppointmentsService{
		client:  client,
		session: session,
	}
}

// ListForCurrentUser returns the logged-in user's appointments in backend
// order. A logged-out session is a guard failure, not a backend call; an
// empty list is an empty state, not an error.
func (s *AppointmentsService) ListForCurrentUser(ctx context.Context) ([]entities.Appointment, error) {
	user := s.session.CurrentUser()
	if user == nil {
		return nil, ErrAuthenticationRequired
	}

	appointments, err := s.client.AppointmentsByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if appointments == nil {
		// An empty history encodes as an empty JSON array, not null.
		appointments = []entities.Appointment{}
	}
	return appointments, nil
}
