package repository

import (
	"context"
	"errors"
	"time"

	"library-backend/internal/domain"
)

// Sentinel errors surfaced by repository implementations when a guarded
// statement affects no rows. Services translate these into the client-facing
// error taxonomy.
var (
	ErrNoCopies       = errors.New("no copies available")
	ErrNotReservation = errors.New("record is not a reservation")
	ErrNotOpen        = errors.New("record is not an open reservation or borrow")
	ErrNotBorrowed    = errors.New("record is not an open borrow")
	ErrCopiesFull     = errors.New("all copies already accounted for")
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int32, upd domain.UserUpdate) error
	Delete(ctx context.Context, id int32) error
	CountAdmins(ctx context.Context) (int32, error)
}

type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id int32) (*domain.Book, error)
	GetByISBN(ctx context.Context, isbn string) (*domain.Book, error)
	List(ctx context.Context) ([]domain.Book, error)
	Update(ctx context.Context, id int32, upd domain.BookUpdate) error
	Delete(ctx context.Context, id int32) error
	CopyTotals(ctx context.Context) (total, available int32, err error)
}

// CirculationRepository owns the circulation lifecycle. Each mutating method
// runs its full effect set (record change, inventory delta, notification
// rows) inside one database transaction; on error nothing is committed.
type CirculationRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.CirculationRecord, error)

	// CreateReservation inserts the record and takes one available copy via a
	// conditional decrement. Returns ErrNoCopies when no unit was free.
	CreateReservation(ctx context.Context, rec *domain.CirculationRecord, notes []domain.NotificationInput) error

	// Approve converts an open reservation into a borrow. Inventory is
	// untouched; the unit was taken at reservation time. Returns
	// ErrNotReservation when the record is not an open reservation.
	Approve(ctx context.Context, id int32, notes []domain.NotificationInput) error

	// CancelOpen deletes an open reservation or borrow and releases its unit.
	// Returns ErrNotOpen when the record is closed or missing.
	CancelOpen(ctx context.Context, id, bookID int32, notes []domain.NotificationInput) error

	// CloseReturn marks an open borrow returned with the given fine and
	// releases its unit. Returns ErrNotBorrowed when the record is not an
	// open borrow.
	CloseReturn(ctx context.Context, id, bookID int32, fine float64, notes []domain.NotificationInput) error

	ListByUser(ctx context.Context, userID int32) ([]domain.CirculationDetail, error)
	ListOpen(ctx context.Context) ([]domain.CirculationDetail, error)
	ListOpenByUser(ctx context.Context, userID int32) ([]domain.CirculationDetail, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]domain.CirculationDetail, error)
	CountOpenBorrows(ctx context.Context) (int32, error)
}

type NotificationRepository interface {
	// Create writes a notification, fanning a broadcast (nil user) out to one
	// row per current admin.
	Create(ctx context.Context, note domain.NotificationInput) error
	GetByID(ctx context.Context, id int32) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Notification, error)
	ListRecent(ctx context.Context, limit int32) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id int32) error
	Delete(ctx context.Context, id int32) error
}
