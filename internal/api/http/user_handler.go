package http

import (
	"net/http"
	"strconv"

	"library-backend/internal/domain"
	"library-backend/internal/service"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	users service.UserService
}

func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func pathID(r *http.Request) (int32, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.Invalid("Invalid id %q", raw)
	}
	return int32(id), nil
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(r.Context())
	if !ok {
		writeError(w, domain.Unauthorized("Authentication required"))
		return
	}
	users, err := h.users.ListUsers(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(r.Context())
	if !ok {
		writeError(w, domain.Unauthorized("Authentication required"))
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var upd domain.UserUpdate
	if err := decodeBody(r, &upd); err != nil {
		writeError(w, err)
		return
	}
	user, err := h.users.UpdateUser(r.Context(), caller, id, upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "User updated successfully",
		"user":    user,
	})
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(r.Context())
	if !ok {
		writeError(w, domain.Unauthorized("Authentication required"))
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.users.DeleteUser(r.Context(), caller, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

func RegisterUserRoutes(router *mux.Router, users service.UserService) {
	handler := NewUserHandler(users)
	router.HandleFunc("/api/users", handler.List).Methods("GET")
	router.HandleFunc("/api/users/{id:[0-9]+}", handler.Update).Methods("PUT")
	router.HandleFunc("/api/users/{id:[0-9]+}", handler.Delete).Methods("DELETE")
}
