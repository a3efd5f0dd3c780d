package domain

import "time"

type CirculationAction string

const (
	CirculationActionReserve CirculationAction = "reserve"
	CirculationActionBorrow  CirculationAction = "borrow"
	CirculationActionReturn  CirculationAction = "return"
)

// DefaultLoanPeriod is applied when a reservation carries no due date.
const DefaultLoanPeriod = 14 * 24 * time.Hour

// CirculationRecord tracks one loan through its lifecycle: created as a
// reservation, converted to a borrow on approval, closed by a return.
// Cancelling an open record deletes it. An open record (reserve or borrow,
// not yet returned) holds exactly one unit of the book's availability.
type CirculationRecord struct {
	ID         int32             `json:"id"`
	UserID     int32             `json:"user_id"`
	BookID     int32             `json:"book_id"`
	Action     CirculationAction `json:"action"`
	ActionDate time.Time         `json:"action_date"`
	DueDate    *time.Time        `json:"due_date"`
	FineAmount float64           `json:"fine_amount"`
	Returned   bool              `json:"returned"`
}

// Open reports whether the record still holds an inventory unit.
func (r *CirculationRecord) Open() bool {
	return !r.Returned &&
		(r.Action == CirculationActionReserve || r.Action == CirculationActionBorrow)
}

// CirculationDetail is a record joined with user and book attributes,
// the shape served by the records listing endpoints.
type CirculationDetail struct {
	ID         int32             `json:"id"`
	UserID     int32             `json:"user_id"`
	Username   string            `json:"username"`
	BookID     int32             `json:"book_id"`
	BookTitle  string            `json:"book_title"`
	BookAuthor string            `json:"book_author"`
	ISBN       string            `json:"isbn"`
	CoverImage string            `json:"cover_image"`
	Action     CirculationAction `json:"action"`
	ActionDate time.Time         `json:"action_date"`
	DueDate    *time.Time        `json:"due_date"`
	FineAmount float64           `json:"fine_amount"`
	Returned   bool              `json:"returned"`
}
