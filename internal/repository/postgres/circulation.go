package postgres

import (
	"context"
	"database/sql"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
	"library-backend/internal/repository"
)

type circulationRepository struct {
	db *sql.DB
}

func NewCirculationRepository(db *sql.DB) repository.CirculationRepository {
	return &circulationRepository{db: db}
}

func (r *circulationRepository) GetByID(ctx context.Context, id int32) (*domain.CirculationRecord, error) {
	rec := &domain.CirculationRecord{}
	query := `SELECT id, user_id, book_id, action, action_date, due_date, fine_amount, returned
	          FROM circulation WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rec.ID, &rec.UserID, &rec.BookID, &rec.Action, &rec.ActionDate, &rec.DueDate, &rec.FineAmount, &rec.Returned,
	)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// CreateReservation takes one available copy and inserts the reservation
// record in a single transaction. The decrement is a conditional update so
// two concurrent reservations of the last copy cannot both succeed: the
// statement only matches while a copy is free, and the loser sees zero
// affected rows.
func (r *circulationRepository) CreateReservation(ctx context.Context, rec *domain.CirculationRecord, notes []domain.NotificationInput) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE books SET available_copies = available_copies - 1 WHERE id = $1 AND available_copies > 0`,
		rec.BookID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNoCopies
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO circulation (user_id, book_id, action, action_date, due_date, fine_amount, returned)
		 VALUES ($1, $2, $3, $4, $5, 0, FALSE) RETURNING id`,
		rec.UserID, rec.BookID, rec.Action, rec.ActionDate, rec.DueDate,
	).Scan(&rec.ID)
	if err != nil {
		return err
	}

	if err := insertNotifications(ctx, tx, notes); err != nil {
		return err
	}
	return tx.Commit()
}

// Approve flips an open reservation to a borrow. No inventory change: the
// copy was already held at reservation time.
func (r *circulationRepository) Approve(ctx context.Context, id int32, notes []domain.NotificationInput) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE circulation SET action = 'borrow' WHERE id = $1 AND action = 'reserve' AND returned = FALSE`,
		id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotReservation
	}

	if err := insertNotifications(ctx, tx, notes); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *circulationRepository) CancelOpen(ctx context.Context, id, bookID int32, notes []domain.NotificationInput) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`DELETE FROM circulation WHERE id = $1 AND action IN ('reserve', 'borrow') AND returned = FALSE`,
		id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotOpen
	}

	if err := releaseCopy(ctx, tx, bookID); err != nil {
		return err
	}
	if err := insertNotifications(ctx, tx, notes); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *circulationRepository) CloseReturn(ctx context.Context, id, bookID int32, fine float64, notes []domain.NotificationInput) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE circulation SET action = 'return', returned = TRUE, fine_amount = $2
		 WHERE id = $1 AND action = 'borrow' AND returned = FALSE`,
		id, fine)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotBorrowed
	}

	if err := releaseCopy(ctx, tx, bookID); err != nil {
		return err
	}
	if err := insertNotifications(ctx, tx, notes); err != nil {
		return err
	}
	return tx.Commit()
}

// releaseCopy gives one unit back, bounded by total_copies so a stray
// release can never push availability past the shelf count.
func releaseCopy(ctx context.Context, tx *sql.Tx, bookID int32) error {
	result, err := tx.ExecContext(ctx,
		`UPDATE books SET available_copies = available_copies + 1 WHERE id = $1 AND available_copies < total_copies`,
		bookID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrCopiesFull
	}
	return nil
}

// insertNotifications writes the operation's notification rows inside the
// same transaction. A broadcast fans out to the admins existing right now;
// admins created later never receive it.
func insertNotifications(ctx context.Context, tx *sql.Tx, notes []domain.NotificationInput) error {
	for _, n := range notes {
		if n.UserID != nil {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO notifications (user_id, title, message) VALUES ($1, $2, $3)`,
				*n.UserID, n.Title, n.Message)
			if err != nil {
				return err
			}
			continue
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO notifications (user_id, title, message)
			 SELECT id, $1, $2 FROM users WHERE role = 'admin' ORDER BY id`,
			n.Title, n.Message)
		if err != nil {
			return err
		}
	}
	return nil
}

const detailColumns = `c.id, c.user_id, u.username, c.book_id, b.title, b.author, b.isbn,
	b.cover_image, c.action, c.action_date, c.due_date, c.fine_amount, c.returned`

func (r *circulationRepository) ListByUser(ctx context.Context, userID int32) ([]domain.CirculationDetail, error) {
	query := `SELECT ` + detailColumns + `
	          FROM circulation c
	          JOIN users u ON c.user_id = u.id
	          JOIN books b ON c.book_id = b.id
	          WHERE c.user_id = $1
	          ORDER BY c.action_date DESC`
	return r.listDetails(ctx, query, userID)
}

func (r *circulationRepository) ListOpen(ctx context.Context) ([]domain.CirculationDetail, error) {
	query := `SELECT ` + detailColumns + `
	          FROM circulation c
	          JOIN users u ON c.user_id = u.id
	          JOIN books b ON c.book_id = b.id
	          WHERE c.action IN ('reserve', 'borrow') AND c.returned = FALSE
	          ORDER BY c.action_date DESC`
	return r.listDetails(ctx, query)
}

func (r *circulationRepository) ListOpenByUser(ctx context.Context, userID int32) ([]domain.CirculationDetail, error) {
	query := `SELECT ` + detailColumns + `
	          FROM circulation c
	          JOIN users u ON c.user_id = u.id
	          JOIN books b ON c.book_id = b.id
	          WHERE c.user_id = $1 AND c.action IN ('reserve', 'borrow') AND c.returned = FALSE
	          ORDER BY c.action_date DESC`
	return r.listDetails(ctx, query, userID)
}

func (r *circulationRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.CirculationDetail, error) {
	query := `SELECT ` + detailColumns + `
	          FROM circulation c
	          JOIN users u ON c.user_id = u.id
	          JOIN books b ON c.book_id = b.id
	          WHERE c.action = 'borrow' AND c.returned = FALSE AND c.due_date < $1
	          ORDER BY c.due_date`
	return r.listDetails(ctx, query, asOf)
}

func (r *circulationRepository) listDetails(ctx context.Context, query string, args ...interface{}) ([]domain.CirculationDetail, error) {
	logger.DatabaseCall("SELECT", "circulation")
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []domain.CirculationDetail
	for rows.Next() {
		var d domain.CirculationDetail
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.Username, &d.BookID, &d.BookTitle, &d.BookAuthor, &d.ISBN,
			&d.CoverImage, &d.Action, &d.ActionDate, &d.DueDate, &d.FineAmount, &d.Returned,
		); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *circulationRepository) CountOpenBorrows(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM circulation WHERE action = 'borrow' AND returned = FALSE`,
	).Scan(&count)
	return count, err
}
