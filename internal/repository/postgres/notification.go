package postgres

import (
	"context"
	"database/sql"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
	"library-backend/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// Create writes a notification outside any circulation transaction (jobs,
// admin actions). Broadcasts fan out to the admins existing at insert time.
func (r *notificationRepository) Create(ctx context.Context, note domain.NotificationInput) error {
	logger.DatabaseCall("INSERT", "notifications", "title", note.Title)
	if note.UserID != nil {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO notifications (user_id, title, message) VALUES ($1, $2, $3)`,
			*note.UserID, note.Title, note.Message)
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (user_id, title, message)
		 SELECT id, $1, $2 FROM users WHERE role = 'admin' ORDER BY id`,
		note.Title, note.Message)
	return err
}

func (r *notificationRepository) GetByID(ctx context.Context, id int32) (*domain.Notification, error) {
	n := &domain.Notification{}
	var createdAt time.Time
	query := `SELECT id, user_id, title, message, is_read, created_at FROM notifications WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.IsRead, &createdAt)
	if err != nil {
		return nil, err
	}
	n.CreatedAt = createdAt.Format(time.RFC3339)
	return n, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Notification, error) {
	query := `SELECT id, user_id, title, message, is_read, created_at
	          FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *notificationRepository) ListRecent(ctx context.Context, limit int32) ([]domain.Notification, error) {
	query := `SELECT id, user_id, title, message, is_read, created_at
	          FROM notifications ORDER BY created_at DESC LIMIT $1`
	return r.list(ctx, query, limit)
}

func (r *notificationRepository) list(ctx context.Context, query string, arg interface{}) ([]domain.Notification, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var createdAt time.Time
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.IsRead, &createdAt); err != nil {
			return nil, err
		}
		n.CreatedAt = createdAt.Format(time.RFC3339)
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *notificationRepository) MarkRead(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *notificationRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
