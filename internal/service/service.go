package service

import (
	"context"
	"time"

	"library-backend/internal/domain"
)

type AuthService interface {
	// Register creates an account. A requested admin role is only honored
	// when the caller already holds one; otherwise the account is a patron.
	Register(ctx context.Context, username, email, password string, role domain.UserRole, caller *domain.Identity) (*domain.User, string, error)
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
}

type UserService interface {
	ListUsers(ctx context.Context, caller domain.Identity) ([]domain.User, error)
	UpdateUser(ctx context.Context, caller domain.Identity, id int32, upd domain.UserUpdate) (*domain.User, error)
	DeleteUser(ctx context.Context, caller domain.Identity, id int32) error
}

type BookService interface {
	ListBooks(ctx context.Context) ([]domain.Book, error)
	GetBook(ctx context.Context, id int32) (*domain.Book, error)
	AddBook(ctx context.Context, caller domain.Identity, book *domain.Book) error
	UpdateBook(ctx context.Context, caller domain.Identity, id int32, upd domain.BookUpdate) (*domain.Book, error)
	DeleteBook(ctx context.Context, caller domain.Identity, id int32) error
}

type CirculationService interface {
	// Reserve creates an open reservation holding one copy of the book.
	// A nil dueDate defaults to the standard loan period from now.
	Reserve(ctx context.Context, caller domain.Identity, bookID int32, dueDate *time.Time) (*domain.CirculationRecord, error)
	// Approve converts a reservation into a borrow. Admin only.
	Approve(ctx context.Context, caller domain.Identity, circulationID int32) (*domain.CirculationRecord, error)
	// Cancel deletes an open reservation or borrow, releasing its copy.
	Cancel(ctx context.Context, caller domain.Identity, circulationID int32) error
	// Return closes a borrow, computing any late fine and releasing its copy.
	Return(ctx context.Context, caller domain.Identity, circulationID int32) (*domain.CirculationRecord, error)
	// Records lists circulation history. Admins may pass any user or none
	// (all open records); patrons always get their own history.
	Records(ctx context.Context, caller domain.Identity, userID *int32) ([]domain.CirculationDetail, error)
	// BorrowedBooks lists a user's currently open records with book details.
	BorrowedBooks(ctx context.Context, caller domain.Identity, userID *int32) ([]domain.CirculationDetail, error)
}

type NotificationService interface {
	ListForUser(ctx context.Context, caller domain.Identity, userID int32) ([]domain.Notification, error)
	MarkRead(ctx context.Context, caller domain.Identity, id int32) error
	Delete(ctx context.Context, caller domain.Identity, id int32) error
}

type DashboardService interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}

type EmailService interface {
	SendOverdueReminder(ctx context.Context, email, username, bookTitle string, dueDate time.Time, accruedFine float64) error
}
