package services

import (
	"context"

	"github.com/subtrack/subtrack_backend/internal/core/domain"
)

// NotificationSvcFacade manages the alert feed.
type NotificationSvcFacade interface {
	ListNotifications(ctx context.Context, unreadOnly bool) ([]domain.Notification, error)

	// EmitIfAbsent creates the notification unless one with the same
	// (type, relatedID) pair already exists. Reports whether it was created.
	EmitIfAbsent(ctx context.Context, notifType domain.NotificationType, relatedID, title, message string) (bool, error)

	// EmitCapacityAlert always creates a new capacity notification; capacity
	// alerts are intentionally not deduplicated.
	EmitCapacityAlert(ctx context.Context, account *domain.MasterAccount) error

	MarkNotificationRead(ctx context.Context, notificationID string) error
	MarkAllNotificationsRead(ctx context.Context) (int, error)
	DeleteNotification(ctx context.Context, notificationID string) error
}
