package service

import (
	"context"
	"database/sql"
	"testing"

	"library-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBookService_AddBook(t *testing.T) {
	ctx := context.Background()

	t.Run("Success with copy defaults", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := NewBookService(bookRepo)

		bookRepo.On("GetByISBN", ctx, "978-0441172719").Return(nil, sql.ErrNoRows)
		bookRepo.On("Create", ctx, mock.AnythingOfType("*domain.Book")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Book).ID = 2
			}).Return(nil)

		book := &domain.Book{Title: "Dune", Author: "Frank Herbert", ISBN: "978-0441172719"}
		err := svc.AddBook(ctx, admin, book)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), book.TotalCopies)
		assert.Equal(t, int32(1), book.AvailableCopies)
		assert.Equal(t, int32(1), book.Quantity)
	})

	t.Run("Duplicate ISBN", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := NewBookService(bookRepo)

		bookRepo.On("GetByISBN", ctx, "978-0441172719").Return(&domain.Book{ID: 2}, nil)

		book := &domain.Book{Title: "Dune", Author: "Frank Herbert", ISBN: "978-0441172719"}
		err := svc.AddBook(ctx, admin, book)
		assert.Equal(t, domain.KindConflict, domain.KindOf(err))
		bookRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Missing required fields", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := NewBookService(bookRepo)

		err := svc.AddBook(ctx, admin, &domain.Book{Title: "Dune"})
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})

	t.Run("Patron forbidden", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := NewBookService(bookRepo)

		err := svc.AddBook(ctx, patron, &domain.Book{Title: "Dune", Author: "Frank Herbert", ISBN: "x"})
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})
}

func TestBookService_UpdateBook(t *testing.T) {
	ctx := context.Background()
	stored := &domain.Book{ID: 2, Title: "Dune", TotalCopies: 5, AvailableCopies: 3}

	t.Run("Sparse update", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := NewBookService(bookRepo)

		shelf := "A3"
		bookRepo.On("GetByID", ctx, int32(2)).Return(stored, nil)
		bookRepo.On("Update", ctx, int32(2), domain.BookUpdate{Shelf: &shelf}).Return(nil)

		_, err := svc.UpdateBook(ctx, admin, 2, domain.BookUpdate{Shelf: &shelf})
		assert.NoError(t, err)
	})

	t.Run("Available cannot exceed total", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := NewBookService(bookRepo)

		bookRepo.On("GetByID", ctx, int32(2)).Return(stored, nil)

		available := int32(9)
		book, err := svc.UpdateBook(ctx, admin, 2, domain.BookUpdate{AvailableCopies: &available})
		assert.Nil(t, book)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		bookRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Not found", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := NewBookService(bookRepo)

		bookRepo.On("GetByID", ctx, int32(7)).Return(nil, sql.ErrNoRows)

		_, err := svc.UpdateBook(ctx, admin, 7, domain.BookUpdate{})
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	})

	t.Run("Patron forbidden", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := NewBookService(bookRepo)

		_, err := svc.UpdateBook(ctx, patron, 2, domain.BookUpdate{})
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})
}

func TestBookService_DeleteBook(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := NewBookService(bookRepo)

		bookRepo.On("GetByID", ctx, int32(2)).Return(&domain.Book{ID: 2}, nil)
		bookRepo.On("Delete", ctx, int32(2)).Return(nil)

		assert.NoError(t, svc.DeleteBook(ctx, admin, 2))
	})

	t.Run("Not found", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := NewBookService(bookRepo)

		bookRepo.On("GetByID", ctx, int32(7)).Return(nil, sql.ErrNoRows)

		err := svc.DeleteBook(ctx, admin, 7)
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	})
}

func TestNotificationService_Authorization(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner marks read", func(t *testing.T) {
		noteRepo := new(MockNotificationRepo)
		svc := NewNotificationService(noteRepo)

		noteRepo.On("GetByID", ctx, int32(4)).Return(&domain.Notification{ID: 4, UserID: 1}, nil)
		noteRepo.On("MarkRead", ctx, int32(4)).Return(nil)

		assert.NoError(t, svc.MarkRead(ctx, patron, 4))
	})

	t.Run("Stranger cannot delete", func(t *testing.T) {
		noteRepo := new(MockNotificationRepo)
		svc := NewNotificationService(noteRepo)

		noteRepo.On("GetByID", ctx, int32(4)).Return(&domain.Notification{ID: 4, UserID: 6}, nil)

		err := svc.Delete(ctx, patron, 4)
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
		noteRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("Patron cannot list another user's notifications", func(t *testing.T) {
		noteRepo := new(MockNotificationRepo)
		svc := NewNotificationService(noteRepo)

		notes, err := svc.ListForUser(ctx, patron, 6)
		assert.Nil(t, notes)
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})

	t.Run("Missing notification", func(t *testing.T) {
		noteRepo := new(MockNotificationRepo)
		svc := NewNotificationService(noteRepo)

		noteRepo.On("GetByID", ctx, int32(99)).Return(nil, sql.ErrNoRows)

		err := svc.MarkRead(ctx, patron, 99)
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	})
}

func TestDashboardService_Stats(t *testing.T) {
	ctx := context.Background()

	bookRepo := new(MockBookRepo)
	circRepo := new(MockCirculationRepo)
	noteRepo := new(MockNotificationRepo)
	svc := NewDashboardService(bookRepo, circRepo, noteRepo)

	bookRepo.On("CopyTotals", ctx).Return(int32(10), int32(7), nil)
	circRepo.On("CountOpenBorrows", ctx).Return(int32(3), nil)
	noteRepo.On("ListRecent", ctx, int32(5)).Return([]domain.Notification{{ID: 1}}, nil)

	stats, err := svc.Stats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int32(10), stats.TotalBooks)
	assert.Equal(t, int32(7), stats.AvailableBooks)
	assert.Equal(t, int32(3), stats.BorrowedBooks)
	assert.Len(t, stats.Notifications, 1)
}
