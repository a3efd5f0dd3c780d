package jobs

import (
	"context"
	"fmt"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
	"library-backend/internal/utils"
)

// SendOverdueReminders notifies and emails every user holding an open borrow
// past its due date. The accrued fine grows until the book comes back, so
// each run reports the current figure.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()
		now := time.Now()

		overdue, err := jr.store.CirculationRepository.ListOverdue(ctx, now)
		if err != nil {
			logger.Error("Failed to list overdue borrows", "error", err)
			return
		}
		if len(overdue) == 0 {
			logger.Info("No overdue borrows found")
			return
		}

		sent := 0
		for _, rec := range overdue {
			if rec.DueDate == nil {
				continue
			}
			fine := utils.CalculateFine(*rec.DueDate, now)

			note := domain.ForUser(rec.UserID, "Overdue Book",
				fmt.Sprintf("The book '%s' was due on %s. Current fine: $%.2f",
					rec.BookTitle, rec.DueDate.Format("2006-01-02"), fine))
			if err := jr.store.NotificationRepository.Create(ctx, note); err != nil {
				logger.Error("Failed to create overdue notification",
					"circulation_id", rec.ID, "error", err)
			}

			user, err := jr.store.UserRepository.GetByID(ctx, rec.UserID)
			if err != nil {
				logger.Error("Failed to load overdue borrower",
					"user_id", rec.UserID, "error", err)
				continue
			}
			if err := jr.email.SendOverdueReminder(ctx, user.Email, user.Username, rec.BookTitle, *rec.DueDate, fine); err != nil {
				logger.Error("Failed to send overdue reminder",
					"user_id", rec.UserID, "circulation_id", rec.ID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent overdue reminders", "overdue", len(overdue), "emails_sent", sent)
	})
}
