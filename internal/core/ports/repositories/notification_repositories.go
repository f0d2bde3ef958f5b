package repositories

import (
	"context"

	"github.com/subtrack/subtrack_backend/internal/core/domain"
)

// NotificationReader defines read operations for notification data.
type NotificationReader interface {
	// ListNotifications retrieves notifications, newest first. A nil isRead
	// means no read-state filter.
	ListNotifications(ctx context.Context, isRead *bool) ([]domain.Notification, error)

	// HasNotification reports whether a notification already exists for the
	// given (type, relatedID) idempotence key.
	HasNotification(ctx context.Context, notifType domain.NotificationType, relatedID string) (bool, error)
}

// NotificationWriter defines write operations for notification data.
type NotificationWriter interface {
	// SaveNotification persists a new notification.
	SaveNotification(ctx context.Context, notification domain.Notification) error

	// MarkNotificationRead flips a single notification's is_read flag.
	MarkNotificationRead(ctx context.Context, notificationID string) error

	// MarkAllNotificationsRead flips every unread notification to read.
	MarkAllNotificationsRead(ctx context.Context) error

	// DeleteNotification removes a notification.
	DeleteNotification(ctx context.Context, notificationID string) error
}

// NotificationRepositoryFacade combines all notification repository interfaces.
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
