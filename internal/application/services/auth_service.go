package services

import (
	"context"
	"strings"

	"hospitalcompare/internal/domain/entities"
	"hospitalcompare/internal/domain/providers"
	"hospitalcompare/internal/infrastructure/clients/hospitalapi"
	apperrors "hospitalcompare/pkg/errors"
)

var (
	ErrMissingCredentials        = apperrors.NewValidationError("email and password are required")
	ErrMissingRegistrationFields = apperrors.NewValidationError("name, email and password are required")
	ErrPasswordMismatch          = apperrors.NewValidationError("passwords do not match")
)

// RegisterInput holds the registration form. ConfirmPassword is checked
// client-side and never sent to the backend.
type RegisterInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Gender          string `json:"gender"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// AuthService handles login, logout and registration, keeping the session
// store in sync. Every session change is broadcast through the store.
type AuthService struct {
	client  hospitalapi.Client
	session providers.SessionStore
}

// NewAuthService creates the auth service.
func NewAuthService(client hospitalapi.Client, session providers.SessionStore) *AuthService {
	return &AuthService{
		client:  client,
		session: session,
	}
}

// Login authenticates against the backend and installs the returned user
// record as the session user.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entities.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.session.SetUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout destroys the session user.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}

// Register creates a new account. The password-confirmation mismatch is a
// client-side validation failure and blocks the backend call.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) error {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return ErrMissingRegistrationFields
	}
	if input.Password != input.ConfirmPassword {
		return ErrPasswordMismatch
	}

	return s.client.Register(ctx, hospitalapi.RegisterRequest{
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.TrimSpace(input.Email),
		Gender:   input.Gender,
		Password: input.Password,
	})
}
