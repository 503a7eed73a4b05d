package services

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"time"

	"hospitalcompare/internal/domain/entities"
	"hospitalcompare/internal/domain/providers"
	"hospitalcompare/internal/infrastructure/clients/hospitalapi"
	apperrors "hospitalcompare/pkg/errors"
)

// BookingState is the explicit state of one booking flow.
type BookingState string

const (
	BookingStateIdle       BookingState = "idle"
	BookingStateSubmitting BookingState = "submitting"
	BookingStateSuccess    BookingState = "success"
	BookingStateFailed     BookingState = "failed"
)

var (
	// ErrAuthenticationRequired blocks guarded actions for logged-out users.
	// The caller redirects to login preserving the intended destination.
	ErrAuthenticationRequired = apperrors.NewUnauthorizedError("you must be logged in to book an appointment")

	ErrNoBookingTarget     = apperrors.NewValidationError("hospital or service details are missing for this booking")
	ErrMissingPatientName  = apperrors.NewValidationError("patient name is required")
	ErrInvalidPatientPhone = apperrors.NewValidationError("patient phone must be exactly 10 digits")
	ErrPastAppointmentDate = apperrors.NewValidationError("appointment date cannot be in the past")
	ErrBookingInProgress   = apperrors.NewValidationError("a booking is already being submitted")
	ErrBookingSuperseded   = apperrors.NewValidationError("the booking target changed while submitting")
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// BookingForm holds the editable patient fields.
type BookingForm struct {
	PatientName     string    `json:"patientName"`
	PatientPhone    string    `json:"patientPhone"`
	AppointmentDate time.Time `json:"appointmentDate"`
}

// BookingConfirmation is surfaced after a successful booking.
type BookingConfirmation struct {
	PatientName     string    `json:"patientName"`
	HospitalName    string    `json:"hospitalName"`
	ServiceName     string    `json:"serviceName"`
	AppointmentDate time.Time `json:"appointmentDate"`
	FormattedDate   string    `json:"formattedDate"`
}

// BookingFlow is the appointment booking state machine:
// Idle -> Submitting -> {Success, Failed}. Retargeting returns to Idle;
// Failed and Success permit resubmission. Submitting gates re-entry so
// rapid duplicate clicks cannot double-book.
type BookingFlow struct {
	client  hospitalapi.Client
	session providers.SessionStore
	now     func() time.Time

	mu             sync.Mutex
	state          BookingState
	hospital       *entities.Hospital
	serviceID      int64
	serviceName    string
	generation     int
	confirmation   *BookingConfirmation
	failureMessage string
}

// NewBookingFlow creates an idle booking flow gated by the session store.
func NewBookingFlow(client hospitalapi.Client, session providers.SessionStore) *BookingFlow {
	return &BookingFlow{
		client:  client,
		session: session,
		now:     time.Now,
		state:   BookingStateIdle,
	}
}

// SetTarget points the flow at a hospital/service pair and resets to Idle.
func (f *BookingFlow) SetTarget(hospital entities.Hospital, serviceID int64, serviceName string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.hospital = &hospital
	f.serviceID = serviceID
	f.serviceName = serviceName
	f.generation++
	f.state = BookingStateIdle
	f.confirmation = nil
	f.failureMessage = ""
}

// State returns the current flow state.
func (f *BookingFlow) State() BookingState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Confirmation returns the booking confirmation after a success, else nil.
func (f *BookingFlow) Confirmation() *BookingConfirmation {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.confirmation
}

// FailureMessage returns the surfaced message after a failure, else "".
func (f *BookingFlow) FailureMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failureMessage
}

// Submit validates the form and books the appointment. Validation failures
// and the session guard never reach the backend. On backend failure the
// flow lands in Failed with the backend's message when present and the form
// stays editable for resubmission.
func (f *BookingFlow) Submit(ctx context.Context, form BookingForm) (*BookingConfirmation, error) {
	f.mu.Lock()
	if f.state == BookingStateSubmitting {
		f.mu.Unlock()
		return nil, ErrBookingInProgress
	}
	if f.hospital == nil || f.serviceID == 0 {
		f.mu.Unlock()
		return nil, ErrNoBookingTarget
	}

	user := f.session.CurrentUser()
	if user == nil {
		f.mu.Unlock()
		return nil, ErrAuthenticationRequired
	}

	if strings.TrimSpace(form.PatientName) == "" {
		f.mu.Unlock()
		return nil, ErrMissingPatientName
	}
	if !phonePattern.MatchString(form.PatientPhone) {
		f.mu.Unlock()
		return nil, ErrInvalidPatientPhone
	}
	if form.AppointmentDate.Before(f.now()) {
		f.mu.Unlock()
		return nil, ErrPastAppointmentDate
	}

	request := entities.AppointmentRequest{
		HospitalID:      f.hospital.ID,
		UserID:          user.ID,
		ServiceID:       f.serviceID,
		PatientName:     strings.TrimSpace(form.PatientName),
		PatientPhone:    form.PatientPhone,
		AppointmentDate: entities.NewLocalDateTime(form.AppointmentDate),
	}
	hospitalName := f.hospital.Name
	serviceName := f.serviceName
	generation := f.generation
	f.state = BookingStateSubmitting
	f.mu.Unlock()

	result, err := f.client.BookAppointment(ctx, request)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.generation != generation {
		// The flow was retargeted mid-flight; the late result must not
		// corrupt the fresh target's state.
		return nil, ErrBookingSuperseded
	}

	if err != nil {
		f.state = BookingStateFailed
		f.failureMessage = userMessage(err, "failed to book appointment, please try again")
		return nil, err
	}
	if !result.Success {
		message := result.Message
		if message == "" {
			message = "failed to book appointment, please try again"
		}
		f.state = BookingStateFailed
		f.failureMessage = message
		return nil, apperrors.NewBackendError(message, nil)
	}

	f.state = BookingStateSuccess
	f.failureMessage = ""
	f.confirmation = &BookingConfirmation{
		PatientName:     request.PatientName,
		HospitalName:    hospitalName,
		ServiceName:     serviceName,
		AppointmentDate: form.AppointmentDate,
		FormattedDate:   form.AppointmentDate.Format("Mon, 02 Jan 2006 15:04"),
	}
	return f.confirmation, nil
}
