package postgres

import (
	"database/sql"

	"library-backend/internal/repository"

	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/lib/pq"
)

// dialect selects the goqu SQL dialect used for dynamically composed
// statements (sparse updates).
const dialect = "postgres"

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.BookRepository
	repository.CirculationRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		BookRepository:         NewBookRepository(db),
		CirculationRepository:  NewCirculationRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
