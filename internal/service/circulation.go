package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
	"library-backend/internal/repository"
	"library-backend/internal/utils"
)

type circulationService struct {
	circRepo repository.CirculationRepository
	bookRepo repository.BookRepository
}

func NewCirculationService(circRepo repository.CirculationRepository, bookRepo repository.BookRepository) CirculationService {
	return &circulationService{
		circRepo: circRepo,
		bookRepo: bookRepo,
	}
}

func (s *circulationService) Reserve(ctx context.Context, caller domain.Identity, bookID int32, dueDate *time.Time) (*domain.CirculationRecord, error) {
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("Book not found")
		}
		return nil, domain.Internal("Failed to load book", err)
	}
	if book.AvailableCopies <= 0 {
		return nil, domain.Conflict("No copies available for reservation")
	}

	due := time.Now().Add(domain.DefaultLoanPeriod)
	if dueDate != nil {
		due = *dueDate
	}

	rec := &domain.CirculationRecord{
		UserID:     caller.ID,
		BookID:     bookID,
		Action:     domain.CirculationActionReserve,
		ActionDate: time.Now(),
		DueDate:    &due,
	}

	notes := []domain.NotificationInput{
		domain.ForAdmins("Book Reservation",
			fmt.Sprintf("User %s has reserved the book '%s'", caller.Username, book.Title)),
	}

	if err := s.circRepo.CreateReservation(ctx, rec, notes); err != nil {
		// The availability pre-check above can lose a race; the conditional
		// decrement inside the transaction is authoritative.
		if errors.Is(err, repository.ErrNoCopies) {
			return nil, domain.Conflict("No copies available for reservation")
		}
		return nil, domain.Internal("Failed to reserve book", err)
	}

	logger.Info("Book reserved", "circulation_id", rec.ID, "book_id", bookID, "user_id", caller.ID)
	return rec, nil
}

func (s *circulationService) Approve(ctx context.Context, caller domain.Identity, circulationID int32) (*domain.CirculationRecord, error) {
	if !caller.IsAdmin() {
		return nil, domain.Forbidden("Admin access required")
	}

	rec, err := s.getRecord(ctx, circulationID)
	if err != nil {
		return nil, err
	}
	if rec.Action != domain.CirculationActionReserve {
		return nil, domain.Conflict("Only reservations can be approved")
	}

	book, err := s.bookRepo.GetByID(ctx, rec.BookID)
	if err != nil {
		return nil, domain.Internal("Failed to load book", err)
	}

	notes := []domain.NotificationInput{
		domain.ForUser(rec.UserID, "Reservation Approved",
			fmt.Sprintf("Your reservation for '%s' has been approved. The book is now checked out to you.", book.Title)),
	}

	if err := s.circRepo.Approve(ctx, circulationID, notes); err != nil {
		if errors.Is(err, repository.ErrNotReservation) {
			return nil, domain.Conflict("Only reservations can be approved")
		}
		return nil, domain.Internal("Failed to approve reservation", err)
	}

	logger.Info("Reservation approved", "circulation_id", circulationID, "admin_id", caller.ID)
	return s.getRecord(ctx, circulationID)
}

func (s *circulationService) Cancel(ctx context.Context, caller domain.Identity, circulationID int32) error {
	rec, err := s.getRecord(ctx, circulationID)
	if err != nil {
		return err
	}
	if rec.UserID != caller.ID && !caller.IsAdmin() {
		return domain.Forbidden("You can only cancel your own reservations")
	}
	if !rec.Open() {
		return domain.Conflict("Only reservations or borrows can be cancelled")
	}

	book, err := s.bookRepo.GetByID(ctx, rec.BookID)
	if err != nil {
		return domain.Internal("Failed to load book", err)
	}

	var notes []domain.NotificationInput
	if !caller.IsAdmin() {
		notes = append(notes, domain.ForAdmins("Reservation Cancelled",
			fmt.Sprintf("User %s has cancelled their reservation for '%s'", caller.Username, book.Title)))
	} else if caller.ID != rec.UserID {
		notes = append(notes, domain.ForUser(rec.UserID, "Reservation Cancelled",
			fmt.Sprintf("Your reservation for '%s' has been cancelled by an administrator", book.Title)))
	}

	if err := s.circRepo.CancelOpen(ctx, circulationID, rec.BookID, notes); err != nil {
		if errors.Is(err, repository.ErrNotOpen) {
			return domain.Conflict("Only reservations or borrows can be cancelled")
		}
		return domain.Internal("Failed to cancel reservation", err)
	}

	logger.Info("Reservation cancelled", "circulation_id", circulationID, "caller_id", caller.ID)
	return nil
}

func (s *circulationService) Return(ctx context.Context, caller domain.Identity, circulationID int32) (*domain.CirculationRecord, error) {
	rec, err := s.getRecord(ctx, circulationID)
	if err != nil {
		return nil, err
	}
	if rec.UserID != caller.ID && !caller.IsAdmin() {
		return nil, domain.Forbidden("You can only return your own borrowed books")
	}
	if rec.Action != domain.CirculationActionBorrow || rec.Returned {
		return nil, domain.Conflict("Only borrowed books can be returned")
	}

	book, err := s.bookRepo.GetByID(ctx, rec.BookID)
	if err != nil {
		return nil, domain.Internal("Failed to load book", err)
	}

	var fine float64
	if rec.DueDate != nil {
		fine = utils.CalculateFine(*rec.DueDate, time.Now())
	}

	adminMessage := fmt.Sprintf("User %s has returned the book '%s'", caller.Username, book.Title)
	if fine > 0 {
		adminMessage += fmt.Sprintf(" with a fine of $%.2f", fine)
	}
	notes := []domain.NotificationInput{
		domain.ForAdmins("Book Returned", adminMessage),
	}
	if fine > 0 {
		notes = append(notes, domain.ForUser(rec.UserID, "Late Return Fine",
			fmt.Sprintf("You have been charged a fine of $%.2f for returning '%s' after the due date", fine, book.Title)))
	}

	if err := s.circRepo.CloseReturn(ctx, circulationID, rec.BookID, fine, notes); err != nil {
		if errors.Is(err, repository.ErrNotBorrowed) {
			return nil, domain.Conflict("Only borrowed books can be returned")
		}
		return nil, domain.Internal("Failed to return book", err)
	}

	logger.Info("Book returned", "circulation_id", circulationID, "fine", fine)
	return s.getRecord(ctx, circulationID)
}

func (s *circulationService) Records(ctx context.Context, caller domain.Identity, userID *int32) ([]domain.CirculationDetail, error) {
	if userID != nil && *userID != caller.ID && !caller.IsAdmin() {
		return nil, domain.Forbidden("You can only view your own circulation records")
	}
	if userID == nil && !caller.IsAdmin() {
		userID = &caller.ID
	}

	var (
		details []domain.CirculationDetail
		err     error
	)
	if userID != nil {
		details, err = s.circRepo.ListByUser(ctx, *userID)
	} else {
		details, err = s.circRepo.ListOpen(ctx)
	}
	if err != nil {
		return nil, domain.Internal("Failed to load circulation records", err)
	}
	return details, nil
}

func (s *circulationService) BorrowedBooks(ctx context.Context, caller domain.Identity, userID *int32) ([]domain.CirculationDetail, error) {
	target := caller.ID
	if userID != nil {
		target = *userID
	}
	if target != caller.ID && !caller.IsAdmin() {
		return nil, domain.Forbidden("You can only view your own borrowed books")
	}

	details, err := s.circRepo.ListOpenByUser(ctx, target)
	if err != nil {
		return nil, domain.Internal("Failed to load borrowed books", err)
	}
	return details, nil
}

func (s *circulationService) getRecord(ctx context.Context, id int32) (*domain.CirculationRecord, error) {
	rec, err := s.circRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("Circulation record not found")
		}
		return nil, domain.Internal("Failed to load circulation record", err)
	}
	return rec, nil
}
