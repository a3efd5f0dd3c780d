package http

import (
	"net/http"

	"library-backend/internal/domain"
	"library-backend/internal/service"

	"github.com/gorilla/mux"
)

type BookHandler struct {
	books service.BookService
}

func NewBookHandler(books service.BookService) *BookHandler {
	return &BookHandler{books: books}
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.books.ListBooks(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, books)
}

func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	book, err := h.books.GetBook(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(r.Context())
	if !ok {
		writeError(w, domain.Unauthorized("Authentication required"))
		return
	}
	var book domain.Book
	if err := decodeBody(r, &book); err != nil {
		writeError(w, err)
		return
	}
	if err := h.books.AddBook(r.Context(), caller, &book); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Book added successfully",
		"book":    book,
	})
}

func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	var upd domain.BookUpdate
	if err := decodeBody(r, &upd); err != nil {
		writeError(w, err)
		return
	}
	book, err := h.books.UpdateBook(r.Context(), caller, id, upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Book updated successfully",
		"book":    book,
	})
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
	if err := h.books.DeleteBook(r.Context(), caller, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Book deleted successfully"})
}

// RegisterPublicBookRoutes exposes the read-only catalog without a token.
func RegisterPublicBookRoutes(router *mux.Router, books service.BookService) {
	handler := NewBookHandler(books)
	router.HandleFunc("/api/books", handler.List).Methods("GET")
	router.HandleFunc("/api/books/{id:[0-9]+}", handler.Get).Methods("GET")
}

func RegisterBookRoutes(router *mux.Router, books service.BookService) {
	handler := NewBookHandler(books)
	router.HandleFunc("/api/books", handler.Create).Methods("POST")
	router.HandleFunc("/api/books/{id:[0-9]+}", handler.Update).Methods("PUT")
	router.HandleFunc("/api/books/{id:[0-9]+}", handler.Delete).Methods("DELETE")
}
