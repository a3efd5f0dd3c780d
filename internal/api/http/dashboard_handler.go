package http

import (
	"net/http"

	"library-backend/internal/domain"
	"library-backend/internal/service"

	"github.com/gorilla/mux"
)

type DashboardHandler struct {
	dashboard service.DashboardService
}

func NewDashboardHandler(dashboard service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if _, ok := callerFrom(r.Context()); !ok {
		writeError(w, domain.Unauthorized("Authentication required"))
		return
	}
	stats, err := h.dashboard.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func RegisterDashboardRoutes(router *mux.Router, dashboard service.DashboardService) {
	handler := NewDashboardHandler(dashboard)
	router.HandleFunc("/api/dashboard/stats", handler.Stats).Methods("GET")
}
