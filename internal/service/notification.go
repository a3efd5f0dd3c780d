package service

import (
	"context"
	"database/sql"
	"errors"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) ListForUser(ctx context.Context, caller domain.Identity, userID int32) ([]domain.Notification, error) {
	if caller.ID != userID && !caller.IsAdmin() {
		return nil, domain.Forbidden("You can only view your own notifications")
	}
	notes, err := s.noteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.Internal("Failed to load notifications", err)
	}
	return notes, nil
}

func (s *notificationService) MarkRead(ctx context.Context, caller domain.Identity, id int32) error {
	if err := s.authorize(ctx, caller, id); err != nil {
		return err
	}
	if err := s.noteRepo.MarkRead(ctx, id); err != nil {
		return domain.Internal("Failed to mark notification as read", err)
	}
	return nil
}

func (s *notificationService) Delete(ctx context.Context, caller domain.Identity, id int32) error {
	if err := s.authorize(ctx, caller, id); err != nil {
		return err
	}
	if err := s.noteRepo.Delete(ctx, id); err != nil {
		return domain.Internal("Failed to delete notification", err)
	}
	return nil
}

func (s *notificationService) authorize(ctx context.Context, caller domain.Identity, id int32) error {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFound("Notification not found")
		}
		return domain.Internal("Failed to load notification", err)
	}
	if note.UserID != caller.ID && !caller.IsAdmin() {
		return domain.Forbidden("You can only manage your own notifications")
	}
	return nil
}
