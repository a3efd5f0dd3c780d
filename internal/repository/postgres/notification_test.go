package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"library-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestNotificationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewNotificationRepository(db)
	ctx := context.Background()

	t.Run("Addressed to one user", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO notifications \\(user_id, title, message\\) VALUES").
			WithArgs(int32(1), "Overdue Book", "bring it back").
			WillReturnResult(sqlmock.NewResult(7, 1))

		err := repo.Create(ctx, domain.ForUser(1, "Overdue Book", "bring it back"))
		assert.NoError(t, err)
	})

	t.Run("Broadcast fans out to admins", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO notifications (.+) SELECT id, \\$1, \\$2 FROM users WHERE role = 'admin'").
			WithArgs("Book Reservation", "reserved").
			WillReturnResult(sqlmock.NewResult(0, 2))

		err := repo.Create(ctx, domain.ForAdmins("Book Reservation", "reserved"))
		assert.NoError(t, err)
	})
}

func TestNotificationRepository_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewNotificationRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "message", "is_read", "created_at"}).
		AddRow(7, 1, "Overdue Book", "bring it back", false, time.Now()).
		AddRow(6, 1, "Reservation Approved", "enjoy", true, time.Now().Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM notifications WHERE user_id = \\$1").
		WithArgs(int32(1)).
		WillReturnRows(rows)

	notes, err := repo.ListByUser(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, notes, 2)
	assert.Equal(t, "Overdue Book", notes[0].Title)
	assert.False(t, notes[0].IsRead)
}

func TestNotificationRepository_MarkRead(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewNotificationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE notifications SET is_read = TRUE").
			WithArgs(int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.MarkRead(ctx, 7))
	})

	t.Run("Missing row", func(t *testing.T) {
		mock.ExpectExec("UPDATE notifications SET is_read = TRUE").
			WithArgs(int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.MarkRead(ctx, 99), sql.ErrNoRows)
	})
}
