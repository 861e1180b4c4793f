package handler

import (
	"log/slog"
	"net/http"

	"litmark/internal/domain/services"
	"litmark/internal/httputil"
)

// AuthHandler handles registration, login and token refresh.
type AuthHandler struct {
	authService services.AuthService
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService services.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register creates a new account
// POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, pair, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	httputil.RespondData(w, http.StatusCreated, map[string]interface{}{
		"user":         user,
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

// Login verifies credentials and returns a token pair
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pair, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, pair)
}

// Refresh rotates a refresh token and returns a fresh pair
// POST /api/auth/refresh
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pair, err := h.authService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		handleError(w, r, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, pair)
}
