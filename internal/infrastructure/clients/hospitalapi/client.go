package hospitalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hospitalcompare/internal/domain/entities"
	apperrors "hospitalcompare/pkg/errors"
)

// genericFailureMessage is surfaced when the backend supplies no message.
const genericFailureMessage = "request failed, please try again"

// Client is the typed interface over the hospital comparison REST backend.
// Every call maps to exactly one endpoint; the backend does all real work.
type Client interface {
	ListServices(ctx context.Context) ([]entities.Service, error)
	SearchHospitals(ctx context.Context, criteria entities.SearchCriteria) ([]entities.Hospital, error)
	CompareHospitals(ctx context.Context, serviceID int64, hospitalIDs []int64) ([]entities.Hospital, error)
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (*ReverseGeocodeResult, error)
	BookAppointment(ctx context.Context, req entities.AppointmentRequest) (*BookingResult, error)
	AppointmentsByUser(ctx context.Context, userID int64) ([]entities.Appointment, error)
	ReviewsByHospital(ctx context.Context, hospitalID int64) ([]entities.Review, error)
	RatingStats(ctx context.Context, hospitalID int64) (*entities.RatingStats, error)
	Login(ctx context.Context, email, password string) (*entities.User, error)
	Register(ctx context.Context, req RegisterRequest) error
}

// HTTPClient implements Client against a base URL. Every call is sent
// exactly once; failures surface to the view instead of being retried.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// ReverseGeocodeResult is the backend's reverse geocoding payload. Both
// fields are optional.
type ReverseGeocodeResult struct {
	City string `json:"city,omitempty"`
	Area string `json:"area,omitempty"`
}

// BookingResult is the backend's booking response.
type BookingResult struct {
	Success     bool                  `json:"success"`
	Message     string                `json:"message,omitempty"`
	Appointment *entities.Appointment `json:"appointment,omitempty"`
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Gender   string `json:"gender"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	User    *entities.User `json:"user,omitempty"`
}

// NewClient creates a client for the given base URL (e.g. http://host:8080/api).
func NewClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ListServices fetches the service catalog.
func (c *HTTPClient) ListServices(ctx context.Context) ([]entities.Service, error) {
	var services []entities.Service
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL+"/services", nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// SearchHospitals runs one hospital search for the given criteria.
func (c *HTTPClient) SearchHospitals(ctx context.Context, criteria entities.SearchCriteria) ([]entities.Hospital, error) {
	parsed, err := url.Parse(c.baseURL + "/hospitals/search")
	if err != nil {
		return nil, err
	}

	query := parsed.Query()
	query.Set("serviceId", strconv.FormatInt(criteria.ServiceID, 10))
	query.Set("city", strings.TrimSpace(criteria.City))
	if area := strings.TrimSpace(criteria.Area); area != "" {
		query.Set("area", area)
	}
	if criteria.HasCoordinates() {
		query.Set("latitude", formatFloat(*criteria.Latitude))
		query.Set("longitude", formatFloat(*criteria.Longitude))
	}
	if criteria.RadiusKm > 0 {
		query.Set("radius", formatFloat(criteria.RadiusKm))
	}
	parsed.RawQuery = query.Encode()

	var hospitals []entities.Hospital
	if err := c.doJSON(ctx, http.MethodGet, parsed.String(), nil, &hospitals); err != nil {
		return nil, err
	}
	return hospitals, nil
}

// CompareHospitals fetches the comparison subset for the selected ids.
func (c *HTTPClient) CompareHospitals(ctx context.Context, serviceID int64, hospitalIDs []int64) ([]entities.Hospital, error) {
	if len(hospitalIDs) == 0 {
		return nil, fmt.Errorf("hospital ids are required")
	}

	ids := make([]string, 0, len(hospitalIDs))
	for _, id := range hospitalIDs {
		ids = append(ids, strconv.FormatInt(id, 10))
	}

	parsed, err := url.Parse(c.baseURL + "/hospitals/compare")
	if err != nil {
		return nil, err
	}
	query := parsed.Query()
	query.Set("serviceId", strconv.FormatInt(serviceID, 10))
	query.Set("hospitalIds", strings.Join(ids, ","))
	parsed.RawQuery = query.Encode()

	var hospitals []entities.Hospital
	if err := c.doJSON(ctx, http.MethodGet, parsed.String(), nil, &hospitals); err != nil {
		return nil, err
	}
	return hospitals, nil
}

// ReverseGeocode resolves coordinates into city/area text.
func (c *HTTPClient) ReverseGeocode(ctx context.Context, latitude, longitude float64) (*ReverseGeocodeResult, error) {
	parsed, err := url.Parse(c.baseURL + "/hospitals/reverse-geocode")
	if err != nil {
		return nil, err
	}
	query := parsed.Query()
	query.Set("latitude", formatFloat(latitude))
	query.Set("longitude", formatFloat(longitude))
	parsed.RawQuery = query.Encode()

	out := &ReverseGeocodeResult{}
	if err := c.doJSON(ctx, http.MethodGet, parsed.String(), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// BookAppointment submits one booking request.
func (c *HTTPClient) BookAppointment(ctx context.Context, req entities.AppointmentRequest) (*BookingResult, error) {
	out := &BookingResult{}
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/appointments", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// AppointmentsByUser lists the user's booked appointments.
func (c *HTTPClient) AppointmentsByUser(ctx context.Context, userID int64) ([]entities.Appointment, error) {
	endpoint := fmt.Sprintf("%s/appointments/user/%d", c.baseURL, userID)
	var appointments []entities.Appointment
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// ReviewsByHospital fetches a hospital's reviews in backend order.
func (c *HTTPClient) ReviewsByHospital(ctx context.Context, hospitalID int64) ([]entities.Review, error) {
	endpoint := fmt.Sprintf("%s/reviews/hospital/%d", c.baseURL, hospitalID)
	var reviews []entities.Review
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// RatingStats fetches a hospital's aggregate rating summary.
func (c *HTTPClient) RatingStats(ctx context.Context, hospitalID int64) (*entities.RatingStats, error) {
	endpoint := fmt.Sprintf("%s/reviews/hospital/%d/stats", c.baseURL, hospitalID)
	out := &entities.RatingStats{}
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Login authenticates and returns the user record on success.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*entities.User, error) {
	out := &authResponse{}
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/auth/login", loginRequest{Email: email, Password: password}, out); err != nil {
		return nil, err
	}
	if !out.Success || out.User == nil {
		message := out.Message
		if message == "" {
			message = "login failed, please check your credentials"
		}
		return nil, apperrors.NewBackendError(message, nil)
	}
	return out.User, nil
}

// Register creates a new user account.
func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) error {
	out := &authResponse{}
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/auth/register", req, out); err != nil {
		return err
	}
	if !out.Success {
		message := out.Message
		if message == "" {
			message = genericFailureMessage
		}
		return apperrors.NewBackendError(message, nil)
	}
	return nil
}

// doJSON performs one request, decoding the response into out. Non-2xx
// responses surface the backend's message verbatim when one is present.
func (c *HTTPClient) doJSON(ctx context.Context, method, endpoint string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperrors.NewInternalError("failed to encode request payload", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return apperrors.NewInternalError("failed to build request", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return apperrors.NewBackendError(genericFailureMessage, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.NewBackendError(backendMessage(resp.Body, resp.StatusCode), nil)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewBackendError(genericFailureMessage, err)
	}
	return nil
}

// backendMessage extracts the backend-provided error message, falling back
// to a generic string so a failure never crashes the view.
func backendMessage(body io.Reader, statusCode int) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return fmt.Sprintf("backend returned status %d", statusCode)
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
