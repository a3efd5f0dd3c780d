package service

import (
	"context"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

const recentNotificationCount = 5

type dashboardService struct {
	bookRepo repository.BookRepository
	circRepo repository.CirculationRepository
	noteRepo repository.NotificationRepository
}

func NewDashboardService(bookRepo repository.BookRepository, circRepo repository.CirculationRepository, noteRepo repository.NotificationRepository) DashboardService {
	return &dashboardService{bookRepo: bookRepo, circRepo: circRepo, noteRepo: noteRepo}
}

func (s *dashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	totalBooks, availableCopies, err := s.bookRepo.CopyTotals(ctx)
	if err != nil {
		return nil, domain.Internal("Failed to load book totals", err)
	}
	borrowed, err := s.circRepo.CountOpenBorrows(ctx)
	if err != nil {
		return nil, domain.Internal("Failed to count borrowed books", err)
	}
	recent, err := s.noteRepo.ListRecent(ctx, recentNotificationCount)
	if err != nil {
		return nil, domain.Internal("Failed to load recent notifications", err)
	}
	return &domain.DashboardStats{
		TotalBooks:     totalBooks,
		AvailableBooks: availableCopies,
		BorrowedBooks:  borrowed,
		Notifications:  recent,
	}, nil
}
