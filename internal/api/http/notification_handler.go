package http

import (
	"net/http"

	"library-backend/internal/domain"
	"library-backend/internal/service"

	"github.com/gorilla/mux"
)

type NotificationHandler struct {
	notifications service.NotificationService
}

func NewNotificationHandler(notifications service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
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
	notes, err := h.notifications.ListForUser(r.Context(), caller, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
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
	if err := h.notifications.MarkRead(r.Context(), caller, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Notification marked as read"})
}

func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
	if err := h.notifications.Delete(r.Context(), caller, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Notification deleted successfully"})
}

func RegisterNotificationRoutes(router *mux.Router, notifications service.NotificationService) {
	handler := NewNotificationHandler(notifications)
	router.HandleFunc("/api/notifications/user/{id:[0-9]+}", handler.ListForUser).Methods("GET")
	router.HandleFunc("/api/notifications/{id:[0-9]+}/read", handler.MarkRead).Methods("PUT")
	router.HandleFunc("/api/notifications/{id:[0-9]+}", handler.Delete).Methods("DELETE")
}
