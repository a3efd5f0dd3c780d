package postgres

import (
	"context"
	"database/sql"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/repository"

	"github.com/doug-martin/goqu/v9"
)

const bookColumns = `id, title, author, isbn, total_copies, available_copies, quantity,
	shelf, category, description, published_year, publisher, cover_image, created_at`

type bookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, b *domain.Book) error {
	query := `INSERT INTO books (title, author, isbn, total_copies, available_copies, quantity,
	                             shelf, category, description, published_year, publisher, cover_image, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		b.Title, b.Author, b.ISBN, b.TotalCopies, b.AvailableCopies, b.Quantity,
		b.Shelf, b.Category, b.Description, b.PublishedYear, b.Publisher, b.CoverImage, time.Now(),
	).Scan(&b.ID)
}

func (r *bookRepository) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	return r.getOne(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id)
}

func (r *bookRepository) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	return r.getOne(ctx, `SELECT `+bookColumns+` FROM books WHERE isbn = $1`, isbn)
}

func (r *bookRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.Book, error) {
	b := &domain.Book{}
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&b.ID, &b.Title, &b.Author, &b.ISBN, &b.TotalCopies, &b.AvailableCopies, &b.Quantity,
		&b.Shelf, &b.Category, &b.Description, &b.PublishedYear, &b.Publisher, &b.CoverImage, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	b.CreatedAt = createdAt.Format(time.RFC3339)
	return b, nil
}

func (r *bookRepository) List(ctx context.Context) ([]domain.Book, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+bookColumns+` FROM books ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var b domain.Book
		var createdAt time.Time
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.ISBN, &b.TotalCopies, &b.AvailableCopies, &b.Quantity,
			&b.Shelf, &b.Category, &b.Description, &b.PublishedYear, &b.Publisher, &b.CoverImage, &createdAt,
		); err != nil {
			return nil, err
		}
		b.CreatedAt = createdAt.Format(time.RFC3339)
		books = append(books, b)
	}
	return books, rows.Err()
}

// Update applies only the fields present on upd, composing the SET list with
// goqu so the statement carries exactly the supplied columns.
func (r *bookRepository) Update(ctx context.Context, id int32, upd domain.BookUpdate) error {
	rec := goqu.Record{}
	if upd.Title != nil {
		rec["title"] = *upd.Title
	}
	if upd.Author != nil {
		rec["author"] = *upd.Author
	}
	if upd.ISBN != nil {
		rec["isbn"] = *upd.ISBN
	}
	if upd.TotalCopies != nil {
		rec["total_copies"] = *upd.TotalCopies
	}
	if upd.AvailableCopies != nil {
		rec["available_copies"] = *upd.AvailableCopies
	}
	if upd.Quantity != nil {
		rec["quantity"] = *upd.Quantity
	}
	if upd.Shelf != nil {
		rec["shelf"] = *upd.Shelf
	}
	if upd.Category != nil {
		rec["category"] = *upd.Category
	}
	if upd.Description != nil {
		rec["description"] = *upd.Description
	}
	if upd.PublishedYear != nil {
		rec["published_year"] = *upd.PublishedYear
	}
	if upd.Publisher != nil {
		rec["publisher"] = *upd.Publisher
	}
	if upd.CoverImage != nil {
		rec["cover_image"] = *upd.CoverImage
	}
	if len(rec) == 0 {
		return nil
	}

	query, args, err := goqu.Dialect(dialect).
		Update("books").
		Prepared(true).
		Set(rec).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
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

func (r *bookRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
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

func (r *bookRepository) CopyTotals(ctx context.Context) (int32, int32, error) {
	var total, available int32
	query := `SELECT count(*), COALESCE(SUM(available_copies), 0) FROM books`
	err := r.db.QueryRowContext(ctx, query).Scan(&total, &available)
	return total, available, err
}
