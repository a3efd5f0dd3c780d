package http

import (
	"net/http"
	"strings"

	"library-backend/internal/domain"
	"library-backend/internal/security"
	"library-backend/internal/service"

	"github.com/gorilla/mux"
)

type AuthHandler struct {
	auth   service.AuthService
	tokens security.TokenManager
}

func NewAuthHandler(auth service.AuthService, tokens security.TokenManager) *AuthHandler {
	return &AuthHandler{auth: auth, tokens: tokens}
}

type registerRequest struct {
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     domain.UserRole `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	// Registration is open, but only an authenticated admin's token lets
	// the requested admin role stick.
	var caller *domain.Identity
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		if claims, err := h.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer ")); err == nil {
			id := claims.Identity()
			caller = &id
		}
	}

	user, token, err := h.auth.Register(r.Context(), req.Username, req.Email, req.Password, req.Role, caller)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"token":   token,
		"user":    user,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

func RegisterAuthRoutes(router *mux.Router, auth service.AuthService, tokens security.TokenManager) {
	handler := NewAuthHandler(auth, tokens)
	router.HandleFunc("/api/users/register", handler.Register).Methods("POST")
	router.HandleFunc("/api/users/login", handler.Login).Methods("POST")
}
