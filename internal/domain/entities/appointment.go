package entities

// AppointmentRequest is the booking payload sent to the backend. The
// backend is authoritative for identity, status and persistence; the
// application only holds transient request/response state.
type AppointmentRequest struct {
	HospitalID      int64         `json:"hospitalId"`
	UserID          int64         `json:"userId"`
	ServiceID       int64         `json:"serviceId"`
	PatientName     string        `json:"patientName"`
	PatientPhone    string        `json:"patientPhone"`
	AppointmentDate LocalDateTime `json:"appointmentDate"`
}

// Appointment is a booked appointment as returned by the backend,
// enriched with hospital and service names for display.
type Appointment struct {
	ID              int64         `json:"id"`
	HospitalID      int64         `json:"hospitalId"`
	UserID          int64         `json:"userId"`
	ServiceID       int64         `json:"serviceId"`
	HospitalName    string        `json:"hospitalName"`
	ServiceName     string        `json:"serviceName"`
	PatientName     string        `json:"patientName"`
	PatientPhone    string        `json:"patientPhone"`
	AppointmentDate LocalDateTime `json:"appointmentDate"`
	Status          string        `json:"status"`
}
