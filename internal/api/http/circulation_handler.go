package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/service"

	"github.com/gorilla/mux"
)

type CirculationHandler struct {
	circulation service.CirculationService
}

func NewCirculationHandler(circulation service.CirculationService) *CirculationHandler {
	return &CirculationHandler{circulation: circulation}
}

type reserveRequest struct {
	BookID  int32  `json:"book_id"`
	DueDate string `json:"due_date"`
}

type circulationIDRequest struct {
	CirculationID int32 `json:"circulation_id"`
}

func parseDueDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, domain.Invalid("Invalid due_date %q", raw)
}

func (h *CirculationHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(r.Context())
	if !ok {
		writeError(w, domain.Unauthorized("Authentication required"))
		return
	}
	var req reserveRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.BookID <= 0 {
		writeError(w, domain.Invalid("book_id is required"))
		return
	}
	due, err := parseDueDate(req.DueDate)
	if err != nil {
		writeError(w, err)
		return
	}

	rec, err := h.circulation.Reserve(r.Context(), caller, req.BookID, due)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":     "Book reserved successfully",
		"circulation": rec,
	})
}

func (h *CirculationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(r.Context())
	if !ok {
		writeError(w, domain.Unauthorized("Authentication required"))
		return
	}
	var req circulationIDRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	rec, err := h.circulation.Approve(r.Context(), caller, req.CirculationID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "Reservation approved successfully",
		"circulation": rec,
	})
}

func (h *CirculationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(r.Context())
	if !ok {
		writeError(w, domain.Unauthorized("Authentication required"))
		return
	}
	var req circulationIDRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.circulation.Cancel(r.Context(), caller, req.CirculationID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Reservation cancelled successfully"})
}

func (h *CirculationHandler) Return(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(r.Context())
	if !ok {
		writeError(w, domain.Unauthorized("Authentication required"))
		return
	}
	var req circulationIDRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	rec, err := h.circulation.Return(r.Context(), caller, req.CirculationID)
	if err != nil {
		writeError(w, err)
		return
	}

	message := "Book returned successfully"
	if rec.FineAmount > 0 {
		message = fmt.Sprintf("Book returned successfully with a fine of $%.2f", rec.FineAmount)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":     message,
		"circulation": rec,
	})
}

func (h *CirculationHandler) Records(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(r.Context())
	if !ok {
		writeError(w, domain.Unauthorized("Authentication required"))
		return
	}

	var userID *int32
	if raw := r.URL.Query().Get("userId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || id <= 0 {
			writeError(w, domain.Invalid("Invalid userId %q", raw))
			return
		}
		v := int32(id)
		userID = &v
	}

	records, err := h.circulation.Records(r.Context(), caller, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *CirculationHandler) Borrowed(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(r.Context())
	if !ok {
		writeError(w, domain.Unauthorized("Authentication required"))
		return
	}

	records, err := h.circulation.BorrowedBooks(r.Context(), caller, nil)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func RegisterCirculationRoutes(router *mux.Router, circulation service.CirculationService) {
	handler := NewCirculationHandler(circulation)
	router.HandleFunc("/api/circulation", handler.Records).Methods("GET")
	router.HandleFunc("/api/circulation/borrowed", handler.Borrowed).Methods("GET")
	router.HandleFunc("/api/circulation/reserve", handler.Reserve).Methods("POST")
	// Legacy alias kept for older clients; loans still require approval.
	router.HandleFunc("/api/circulation/borrow", handler.Reserve).Methods("POST")
	router.HandleFunc("/api/circulation/approve", handler.Approve).Methods("POST")
	router.HandleFunc("/api/circulation/cancel", handler.Cancel).Methods("POST")
	router.HandleFunc("/api/circulation/return", handler.Return).Methods("POST")
}
