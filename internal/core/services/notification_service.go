package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/subtrack/subtrack_backend/internal/apperrors"
	"github.com/subtrack/subtrack_backend/internal/core/domain"
	portsrepo "github.com/subtrack/subtrack_backend/internal/core/ports/repositories"
	portssvc "github.com/subtrack/subtrack_backend/internal/core/ports/services"
)

// notificationService implements the NotificationSvcFacade interface
type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo portsrepo.NotificationRepositoryFacade) portssvc.NotificationSvcFacade {
	return &notificationService{notificationRepo: repo}
}

// Ensure notificationService implements the NotificationSvcFacade interface
var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

func (s *notificationService) ListNotifications(ctx context.Context, unreadOnly bool) ([]domain.Notification, error) {
	var isRead *bool
	if unreadOnly {
		f := false
		isRead = &f
	}

	notifications, err := s.notificationRepo.ListNotifications(ctx, isRead)
	if err != nil {
		s.LogError(ctx, err, "Failed to list notifications from repository")
		return nil, err
	}
	if notifications == nil {
		return []domain.Notification{}, nil
	}
	return notifications, nil
}

// EmitIfAbsent creates the notification unless one with the same
// (type, relatedID) pair already exists. The pair is the idempotence key for
// sweep-driven alerts; a second sweep run emits nothing new.
func (s *notificationService) EmitIfAbsent(ctx context.Context, notifType domain.NotificationType, relatedID, title, message string) (bool, error) {
	exists, err := s.notificationRepo.HasNotification(ctx, notifType, relatedID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check notification existence",
			slog.String("type", string(notifType)),
			slog.String("related_id", relatedID))
		return false, err
	}
	if exists {
		s.LogDebug(ctx, "Notification already exists, skipping emission",
			slog.String("type", string(notifType)),
			slog.String("related_id", relatedID))
		return false, nil
	}

	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		Type:           notifType,
		Title:          title,
		Message:        message,
		RelatedID:      relatedID,
		IsRead:         false,
		CreatedAt:      time.Now(),
	}
	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		s.LogError(ctx, err, "Failed to save notification",
			slog.String("type", string(notifType)),
			slog.String("related_id", relatedID))
		return false, err
	}

	s.LogInfo(ctx, "Notification emitted",
		slog.String("notification_id", notification.NotificationID),
		slog.String("type", string(notifType)),
		slog.String("related_id", relatedID))
	return true, nil
}

// EmitCapacityAlert always creates a new capacity notification. Capacity
// alerts are not deduplicated: each threshold crossing is worth seeing.
func (s *notificationService) EmitCapacityAlert(ctx context.Context, account *domain.MasterAccount) error {
	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		Type:           domain.NotificationAccountCapacity,
		Title:          "Master account near capacity",
		Message: fmt.Sprintf("Account %q is at %d/%d seats (%.0f%%)",
			account.AccountName, account.CurrentUsage, account.MaxCapacity, account.UtilizationPercent()),
		RelatedID: account.AccountID,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		s.LogError(ctx, err, "Failed to save capacity notification",
			slog.String("account_id", account.AccountID))
		return err
	}

	s.LogInfo(ctx, "Capacity alert emitted",
		slog.String("account_id", account.AccountID),
		slog.Int("current_usage", account.CurrentUsage),
		slog.Int("max_capacity", account.MaxCapacity))
	return nil
}

func (s *notificationService) MarkNotificationRead(ctx context.Context, notificationID string) error {
	if err := s.notificationRepo.MarkNotificationRead(ctx, notificationID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to mark notification read",
				slog.String("notification_id", notificationID))
		}
		return err
	}
	return nil
}

func (s *notificationService) MarkAllNotificationsRead(ctx context.Context) (int, error) {
	unread := false
	notifications, err := s.notificationRepo.ListNotifications(ctx, &unread)
	if err != nil {
		s.LogError(ctx, err, "Failed to count unread notifications")
		return 0, err
	}

	if err := s.notificationRepo.MarkAllNotificationsRead(ctx); err != nil {
		s.LogError(ctx, err, "Failed to mark all notifications read")
		return 0, err
	}

	s.LogInfo(ctx, "Marked all notifications read", slog.Int("count", len(notifications)))
	return len(notifications), nil
}

func (s *notificationService) DeleteNotification(ctx context.Context, notificationID string) error {
	if err := s.notificationRepo.DeleteNotification(ctx, notificationID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete notification",
				slog.String("notification_id", notificationID))
		}
		return err
	}
	return nil
}
