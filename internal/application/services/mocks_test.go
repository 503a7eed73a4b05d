package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hospitalcompare/internal/domain/entities"
	"hospitalcompare/internal/domain/providers"
	"hospitalcompare/internal/infrastructure/clients/hospitalapi"
)

// Mocks

type MockClient struct {
	mock.Mock
}

func (m *MockClient) ListServices(ctx context.Context) ([]entities.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Service), args.Error(1)
}

func (m *MockClient) SearchHospitals(ctx context.Context, criteria entities.SearchCriteria) ([]entities.Hospital, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Hospital), args.Error(1)
}

func (m *MockClient) CompareHospitals(ctx context.Context, serviceID int64, hospitalIDs []int64) ([]entities.Hospital, error) {
	args := m.Called(ctx, serviceID, hospitalIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Hospital), args.Error(1)
}

func (m *MockClient) ReverseGeocode(ctx context.Context, latitude, longitude float64) (*hospitalapi.ReverseGeocodeResult, error) {
	args := m.Called(ctx, latitude, longitude)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hospitalapi.ReverseGeocodeResult), args.Error(1)
}

func (m *MockClient) BookAppointment(ctx context.Context, req entities.AppointmentRequest) (*hospitalapi.BookingResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hospitalapi.BookingResult), args.Error(1)
}

func (m *MockClient) AppointmentsByUser(ctx context.Context, userID int64) ([]entities.Appointment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Appointment), args.Error(1)
}

func (m *MockClient) ReviewsByHospital(ctx context.Context, hospitalID int64) ([]entities.Review, error) {
	args := m.Called(ctx, hospitalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Review), args.Error(1)
}

func (m *MockClient) RatingStats(ctx context.Context, hospitalID int64) (*entities.RatingStats, error) {
	args := m.Called(ctx, hospitalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RatingStats), args.Error(1)
}

func (m *MockClient) Login(ctx context.Context, email, password string) (*entities.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockClient) Register(ctx context.Context, req hospitalapi.RegisterRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

type MockLocationProvider struct {
	mock.Mock
}

func (m *MockLocationProvider) CurrentLocation(ctx context.Context) (providers.Coordinates, error) {
	args := m.Called(ctx)
	return args.Get(0).(providers.Coordinates), args.Error(1)
}
