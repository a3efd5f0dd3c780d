package utils

import (
	"math"
	"time"
)

// FinePerDay is the late-return penalty in dollars per day (or fraction of a
// day, rounded up) past the due date.
const FinePerDay = 1.00

// DaysOverdue returns how many whole or partial days returnedAt falls after
// dueDate, zero when the return is on time.
func DaysOverdue(dueDate, returnedAt time.Time) int {
	if !returnedAt.After(dueDate) {
		return 0
	}
	return int(math.Ceil(returnedAt.Sub(dueDate).Hours() / 24))
}

// CalculateFine computes the late fee for a book returned at returnedAt
// against its due date.
func CalculateFine(dueDate, returnedAt time.Time) float64 {
	return float64(DaysOverdue(dueDate, returnedAt)) * FinePerDay
}
