package api

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/erazemk/catalog/internal/auth"
)

// AuthHandler handles the login endpoint.
type AuthHandler struct {
	Auth    auth.Authenticator
	Metrics *Metrics
	Logger  *zap.Logger
}

// Pointer fields tell a missing field apart from an empty one. Empty values
// go to the authenticator and are rejected there like any other bad password.
type loginRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username == nil || req.Password == nil {
		jsonError(w, http.StatusBadRequest, "username and password required")
		return
	}
	username := *req.Username

	token, err := h.Auth.Issue(r.Context(), username, *req.Password)
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrInvalidCredentials):
		h.Metrics.ObserveLogin(loginInvalid)
		h.Logger.Warn("login failed", zap.String("user", username), zap.String("remote", r.RemoteAddr))
		w.Header().Set("WWW-Authenticate", "Bearer")
		jsonError(w, http.StatusUnauthorized, "invalid credentials")
		return
	case errors.Is(err, auth.ErrAuthService):
		h.Metrics.ObserveLogin(loginError)
		jsonError(w, http.StatusBadGateway, "authentication service unavailable")
		return
	default:
		h.Metrics.ObserveLogin(loginError)
		h.Logger.Error("issuing token", zap.String("user", username), zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.Metrics.ObserveLogin(loginSuccess)
	jsonResponse(w, http.StatusOK, loginResponse{AccessToken: token, TokenType: "bearer"})
}
