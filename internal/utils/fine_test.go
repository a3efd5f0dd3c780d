package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysOverdue(t *testing.T) {
	due := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Returned before due date", func(t *testing.T) {
		assert.Equal(t, 0, DaysOverdue(due, due.Add(-48*time.Hour)))
	})

	t.Run("Returned exactly on due date", func(t *testing.T) {
		assert.Equal(t, 0, DaysOverdue(due, due))
	})

	t.Run("Partial day rounds up", func(t *testing.T) {
		assert.Equal(t, 1, DaysOverdue(due, due.Add(30*time.Minute)))
	})

	t.Run("Exact multiple of a day", func(t *testing.T) {
		assert.Equal(t, 3, DaysOverdue(due, due.Add(72*time.Hour)))
	})

	t.Run("Three days and change", func(t *testing.T) {
		assert.Equal(t, 4, DaysOverdue(due, due.Add(72*time.Hour+time.Minute)))
	})
}

func TestCalculateFine(t *testing.T) {
	due := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("No fine on time", func(t *testing.T) {
		assert.Equal(t, 0.0, CalculateFine(due, due.Add(-time.Hour)))
	})

	t.Run("One dollar per day", func(t *testing.T) {
		assert.Equal(t, 3.0, CalculateFine(due, due.Add(72*time.Hour)))
	})

	t.Run("Fraction of a day charges a full day", func(t *testing.T) {
		assert.Equal(t, 1.0, CalculateFine(due, due.Add(5*time.Minute)))
	})
}
