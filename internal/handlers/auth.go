package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/taskbook/api/internal/auth"
	"github.com/taskbook/api/internal/middleware"
	"github.com/taskbook/api/internal/request"
)

// AuthHandler handles signup, login, and logout
type AuthHandler struct {
	svc        *auth.Service
	sessionTTL time.Duration
	logger     *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(svc *auth.Service, sessionTTL time.Duration, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, sessionTTL: sessionTTL, logger: logger}
}

// RegisterRoutes registers auth routes on the given router
func (h *AuthHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/signup", h.SignUp).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	r.HandleFunc("/logout", h.Logout).Methods("POST")
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// SignUp registers a new account and opens a session
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON body")
		return
	}

	user, token, err := h.svc.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondAuthError(w, err)
		return
	}

	http.SetCookie(w, middleware.SessionCookie(token, h.sessionTTL))
	respondJSON(w, http.StatusCreated, authResponse{Email: user.Email, Token: token})
}

// Login verifies credentials and opens a session
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON body")
		return
	}

	user, token, err := h.svc.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondAuthError(w, err)
		return
	}

	http.SetCookie(w, middleware.SessionCookie(token, h.sessionTTL))
	respondJSON(w, http.StatusOK, authResponse{Email: user.Email, Token: token})
}

// Logout ends the current session. Safe to call without one.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.SessionToken(r); token != "" {
		if err := h.svc.SignOut(r.Context(), token); err != nil {
			h.logger.Warn("failed_to_delete_session", zap.Error(err))
		}
	}
	http.SetCookie(w, middleware.SessionCookie("", 0))
	respondJSON(w, http.StatusOK, map[string]any{})
}

// Me returns the authenticated user. Registered behind the auth middleware.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := request.UserFromContext(r)
	if user == nil {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "User not found in context")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"email": user.Email})
}

func (h *AuthHandler) respondAuthError(w http.ResponseWriter, err error) {
	var ve *auth.ValidationError
	var ce *auth.CredentialError
	switch {
	case errors.As(err, &ve):
		respondJSONError(w, http.StatusBadRequest, "Bad Request", auth.Message(err))
	case errors.As(err, &ce):
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", auth.Message(err))
	default:
		h.logger.Error("auth_failure", zap.Error(err))
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", auth.Message(err))
	}
}
