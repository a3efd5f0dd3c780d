package service

import (
	"context"
	"database/sql"
	"errors"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
	"library-backend/internal/repository"
)

type bookService struct {
	bookRepo repository.BookRepository
}

func NewBookService(bookRepo repository.BookRepository) BookService {
	return &bookService{bookRepo: bookRepo}
}

func (s *bookService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	books, err := s.bookRepo.List(ctx)
	if err != nil {
		return nil, domain.Internal("Failed to load books", err)
	}
	return books, nil
}

func (s *bookService) GetBook(ctx context.Context, id int32) (*domain.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("Book not found")
		}
		return nil, domain.Internal("Failed to load book", err)
	}
	return book, nil
}

func (s *bookService) AddBook(ctx context.Context, caller domain.Identity, book *domain.Book) error {
	if !caller.IsAdmin() {
		return domain.Forbidden("Admin access required")
	}
	if book.Title == "" || book.Author == "" || book.ISBN == "" {
		return domain.Invalid("Title, author and ISBN are required")
	}

	if _, err := s.bookRepo.GetByISBN(ctx, book.ISBN); err == nil {
		return domain.Conflict("A book with this ISBN already exists")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return domain.Internal("Failed to check ISBN", err)
	}

	if book.TotalCopies <= 0 {
		book.TotalCopies = 1
	}
	if book.AvailableCopies <= 0 {
		book.AvailableCopies = book.TotalCopies
	}
	if book.Quantity <= 0 {
		book.Quantity = book.TotalCopies
	}
	if book.AvailableCopies > book.TotalCopies {
		return domain.Invalid("Available copies cannot exceed total copies")
	}

	if err := s.bookRepo.Create(ctx, book); err != nil {
		return domain.Internal("Failed to create book", err)
	}
	logger.Info("Book added", "book_id", book.ID, "isbn", book.ISBN, "admin_id", caller.ID)
	return nil
}

func (s *bookService) UpdateBook(ctx context.Context, caller domain.Identity, id int32, upd domain.BookUpdate) (*domain.Book, error) {
	if !caller.IsAdmin() {
		return nil, domain.Forbidden("Admin access required")
	}

	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("Book not found")
		}
		return nil, domain.Internal("Failed to load book", err)
	}

	// Counter invariant holds against the post-update values.
	total := book.TotalCopies
	available := book.AvailableCopies
	if upd.TotalCopies != nil {
		total = *upd.TotalCopies
	}
	if upd.AvailableCopies != nil {
		available = *upd.AvailableCopies
	}
	if total < 0 || available < 0 || available > total {
		return nil, domain.Invalid("Available copies must be between 0 and total copies")
	}

	if err := s.bookRepo.Update(ctx, id, upd); err != nil {
		return nil, domain.Internal("Failed to update book", err)
	}

	updated, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Internal("Failed to load updated book", err)
	}
	logger.Info("Book updated", "book_id", id, "admin_id", caller.ID)
	return updated, nil
}

func (s *bookService) DeleteBook(ctx context.Context, caller domain.Identity, id int32) error {
	if !caller.IsAdmin() {
		return domain.Forbidden("Admin access required")
	}
	if _, err := s.bookRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFound("Book not found")
		}
		return domain.Internal("Failed to load book", err)
	}
	if err := s.bookRepo.Delete(ctx, id); err != nil {
		return domain.Internal("Failed to delete book", err)
	}
	logger.Info("Book deleted", "book_id", id, "admin_id", caller.ID)
	return nil
}
