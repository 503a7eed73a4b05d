package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hospitalcompare/internal/adapters/session"
	"hospitalcompare/internal/application/services"
	"hospitalcompare/internal/domain/entities"
	"hospitalcompare/internal/infrastructure/clients/hospitalapi"
	apperrors "hospitalcompare/pkg/errors"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("installs the backend user as the session user", func(t *testing.T) {
		client := new(MockClient)
		store := session.NewMemoryStore()
		service := services.NewAuthService(client, store)

		user := &entities.User{ID: 5, Name: "Asha", Email: "asha@example.com"}
		client.On("Login", mock.Anything, "asha@example.com", "secret").Return(user, nil)

		var broadcast *entities.User
		unsubscribe := store.Subscribe(func(u *entities.User) { broadcast = u })
		defer unsubscribe()

		got, err := service.Login(ctx, "asha@example.com", "secret")

		assert.NoError(t, err)
		assert.Equal(t, user, got)
		assert.Equal(t, user, store.CurrentUser())
		assert.Equal(t, user, broadcast)
	})

	t.Run("rejects empty credentials without a backend call", func(t *testing.T) {
		client := new(MockClient)
		service := services.NewAuthService(client, session.NewMemoryStore())

		_, err := service.Login(ctx, "  ", "secret")
		assert.ErrorIs(t, err, services.ErrMissingCredentials)

		_, err = service.Login(ctx, "asha@example.com", "")
		assert.ErrorIs(t, err, services.ErrMissingCredentials)

		client.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("failed login leaves the session logged out", func(t *testing.T) {
		client := new(MockClient)
		store := session.NewMemoryStore()
		service := services.NewAuthService(client, store)

		client.On("Login", mock.Anything, "asha@example.com", "wrong").
			Return(nil, apperrors.NewBackendError("invalid credentials", nil))

		_, err := service.Login(ctx, "asha@example.com", "wrong")

		assert.Error(t, err)
		assert.Nil(t, store.CurrentUser())
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	client := new(MockClient)
	store := session.NewMemoryStore()
	service := services.NewAuthService(client, store)

	assert.NoError(t, store.SetUser(ctx, &entities.User{ID: 5}))

	var broadcast *entities.User = &entities.User{ID: 5}
	unsubscribe := store.Subscribe(func(u *entities.User) { broadcast = u })
	defer unsubscribe()

	assert.NoError(t, service.Logout(ctx))
	assert.Nil(t, store.CurrentUser())
	assert.Nil(t, broadcast)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("sends the trimmed form without the confirmation field", func(t *testing.T) {
		client := new(MockClient)
		service := services.NewAuthService(client, session.NewMemoryStore())

		client.On("Register", mock.Anything, hospitalapi.RegisterRequest{
			Name:     "Asha Kumar",
			Email:    "asha@example.com",
			Gender:   "female",
			Password: "secret",
		}).Return(nil)

		err := service.Register(ctx, services.RegisterInput{
			Name:            "  Asha Kumar ",
			Email:           " asha@example.com ",
			Gender:          "female",
			Password:        "secret",
			ConfirmPassword: "secret",
		})

		assert.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		client := new(MockClient)
		service := services.NewAuthService(client, session.NewMemoryStore())

		err := service.Register(ctx, services.RegisterInput{Email: "asha@example.com", Password: "secret"})

		assert.ErrorIs(t, err, services.ErrMissingRegistrationFields)
		client.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("rejects a password mismatch before the backend call", func(t *testing.T) {
		client := new(MockClient)
		service := services.NewAuthService(client, session.NewMemoryStore())

		err := service.Register(ctx, services.RegisterInput{
			Name:            "Asha",
			Email:           "asha@example.com",
			Password:        "secret",
			ConfirmPassword: "different",
		})

		assert.ErrorIs(t, err, services.ErrPasswordMismatch)
		client.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})
}

func TestAppointmentsService_ListForCurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a logged-in user", func(t *testing.T) {
		client := new(MockClient)
		service := services.NewAppointmentsService(client, session.NewMemoryStore())

		_, err := service.ListForCurrentUser(ctx)

		assert.ErrorIs(t, err, services.ErrAuthenticationRequired)
		client.AssertNotCalled(t, "AppointmentsByUser", mock.Anything, mock.Anything)
	})

	t.Run("lists the session user's appointments", func(t *testing.T) {
		client := new(MockClient)
		store := session.NewMemoryStore()
		service := services.NewAppointmentsService(client, store)

		assert.NoError(t, store.SetUser(ctx, &entities.User{ID: 5}))

		appointments := []entities.Appointment{
			{ID: 1, HospitalID: 10, UserID: 5, Status: "CONFIRMED"},
		}
		client.On("AppointmentsByUser", mock.Anything, int64(5)).Return(appointments, nil)

		got, err := service.ListForCurrentUser(ctx)

		assert.NoError(t, err)
		assert.Equal(t, appointments, got)
	})

	t.Run("an empty history is an empty list, not nil", func(t *testing.T) {
		client := new(MockClient)
		store := session.NewMemoryStore()
		service := services.NewAppointmentsService(client, store)

		assert.NoError(t, store.SetUser(ctx, &entities.User{ID: 5}))
		client.On("AppointmentsByUser", mock.Anything, int64(5)).Return(nil, nil)

		got, err := service.ListForCurrentUser(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
