package handlers

import (
	"net/http"

	"hospitalcompare/internal/application/services"
	"hospitalcompare/internal/domain/providers"
)

// AuthHandler handles login, registration and session endpoints
type AuthHandler struct {
	auth    *services.AuthService
	session providers.SessionStore
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *services.AuthService, session providers.SessionStore) *AuthHandler {
	return &AuthHandler{auth: auth, session: session}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /app/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondWithAppError(w, err)
		return
	}

	user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"user": user,
	})
}

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Gender          string `json:"gender"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Register handles POST /app/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondWithAppError(w, err)
		return
	}

	err := h.auth.Register(r.Context(), services.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Gender:          req.Gender,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]string{
		"message": "registration successful, please log in",
	})
}

// Logout handles POST /app/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context()); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "logged out",
	})
}

// Session handles GET /app/session
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	user := h.session.CurrentUser()

	payload := map[string]interface{}{
		"authenticated": user != nil,
	}
	if user != nil {
		payload["user"] = user
	}

	respondWithJSON(w, http.StatusOK, payload)
}
