package service

import (
	"context"

	"vecitools-backend/internal/domain"
	"vecitools-backend/internal/logger"
	"vecitools-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) ListForUser(ctx context.Context, actor domain.Actor) ([]domain.Notification, error) {
	return s.noteRepo.ListByUser(ctx, actor.UserID)
}

func (s *notificationService) MarkAsRead(ctx context.Context, actor domain.Actor, notificationID int32) error {
	return s.noteRepo.MarkAsRead(ctx, notificationID, actor.UserID)
}

// storeSink writes notifications to the store. Failures are logged, never
// returned: a dropped notification must not fail the mutation it rode on.
type storeSink struct {
	noteRepo repository.NotificationRepository
}

func NewStoreNotificationSink(noteRepo repository.NotificationRepository) NotificationSink {
	return &storeSink{noteRepo: noteRepo}
}

func (s *storeSink) Notify(ctx context.Context, userID int32, message string) {
	note := &domain.Notification{
		UserID:  userID,
		Message: message,
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.ErrorContext(ctx, "Failed to record notification", "user_id", userID, "error", err)
	}
}
